// SPDX-License-Identifier: MIT

// Package search implements the two search machines compared side by side:
//
//	Linear  - classical scan, one index per tick, O(n).
//	Grover  - amplitude-amplification stand-in, ceil(sqrt(n)) ticks, O(√n).
//
// Grover is a heuristic visual model, not a physical simulation: each tick
// multiplies the target amplitude by 1.5 (capped at 0.9), every other
// amplitude by 0.9 (floored at 0.1/n), then L2-renormalizes. The constants
// are fixed so replays match previously recorded outputs.
//
// Both machines are generic over comparable element types and deep-copy
// their input at construction.
package search
