// SPDX-License-Identifier: MIT

// Package compare aggregates the terminal Results of a classical and a
// quantum-inspired machine that solved the same problem.
//
// Compare is pure: it holds no state and may be called repeatedly.
//
//	cmp := compare.Compare(compare.Search, lin, grov, 5)
//	fmt.Println(cmp.SpeedupLabel, cmp.Narrative)
//
// Speedup is classical.Steps / quantum.Steps. It is undefined when either
// side took zero steps and is then labelled NotAvailable.
//
// RelativeError is ‖s1 − s2‖ / ‖s1‖ over the numeric Solution vectors and is
// reported as a percentage. It is undefined when a solution is missing,
// the lengths differ, or ‖s1‖ < machine.Epsilon.
package compare
