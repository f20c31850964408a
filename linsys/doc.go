// SPDX-License-Identifier: MIT

// Package linsys implements the linear-system machines for small square
// systems M·x = b (n in [2,4]):
//
//	Gauss - Gaussian elimination without partial pivoting; rows are swapped
//	        only when the pivot is effectively zero. One row swap, column skip,
//	        row elimination, pivot advance, normalization or back-substitution
//	        per tick. Singular systems end with Solved=false and
//	        Reason "singular matrix".
//	HHL   - a nine-tick, non-physical stand-in for the HHL quantum solver:
//	        init, phase estimation (3), ancilla rotation (1), inverse phase
//	        estimation (3), measurement (1). It never detects singular input.
//
// Tick schedule of Gauss for a pivot (r,c):
//
//	forward:  c == n                -> enter backward
//	          |M[r][c]| < eps       -> swap with first row below with a usable
//	                                   entry, else skip the column
//	          rows below remain     -> eliminate the next one; eliminating the
//	                                   last one also advances the pivot
//	          no rows below         -> advance (r+1 == n enters backward)
//	backward: |M[r][r]| < eps       -> singular
//	          |M[r][r]-1| > eps     -> normalize row r
//	          otherwise             -> substitute into rows above, r--;
//	                                   r == -1 emits the solution
//
// All is-zero decisions use machine.Epsilon.
package linsys
