// SPDX-License-Identifier: MIT

// Package factor implements the integer-factorization machine pair:
//
//	Trial - classical trial division, one divisibility check per tick.
//	Shor  - a precomputed walk-through of Shor-style period finding with
//	        bases 2, 7 and 11 and a classical fallback, one stage per tick.
//
// Both accept 1 < n <= 2^31-1 and report the prime factorization in
// ascending order with multiplicity, so the product of Result.Factors is n.
package factor
