// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// linear-system machines.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix stored in one flat slice.
//   - Row operations (SwapRows, ScaleRow, AddScaledRow) in the exact form
//     Gaussian elimination performs them, one call per visible step.
//   - MatVec and Residual for checking a solution against M·x = b.
//   - Eigen, a Jacobi rotation eigen-solver for symmetric matrices.
//   - Validators for shape, symmetry and finiteness.
//
// Errors are package sentinels prefixed "matrix: ..." and wrapped with the
// operation tag at the detection site; match them with errors.Is.
package matrix
