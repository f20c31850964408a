// SPDX-License-Identifier: MIT

// Package scenario reads scenario files and builds the classical and
// quantum-inspired machine pair they describe.
//
// A scenario is YAML decoded with unknown fields rejected, then checked with
// go-playground/validator. Field errors are reported by YAML key:
//
//	name: search-demo
//	problem: search
//	search:
//	  values: ["101", "99", "42", "1337", "512"]
//	  target: "42"
//
// Build constructs the pair; construction errors from the machine packages
// (for example linsys.ErrSizeOutOfRange) are returned wrapped.
package scenario
