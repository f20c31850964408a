// SPDX-License-Identifier: MIT

package linsys

import "fmt"

// Defaults for the Jacobi eigenvalue mode of HHL.
const (
	DefaultEigenTolerance = 1e-12
	DefaultEigenMaxIter   = 200
)

// HHLOptions configures the HHL machine.
type HHLOptions struct {
	// JacobiEigenvalues replaces the diagonal heuristic with a Jacobi
	// eigendecomposition when M is symmetric.
	JacobiEigenvalues bool

	// EigenTolerance is the Jacobi convergence and symmetry tolerance.
	EigenTolerance float64

	// EigenMaxIter caps the Jacobi rotations.
	EigenMaxIter int

	err error
}

// Option configures HHLOptions.
type Option func(*HHLOptions)

// DefaultOptions returns the diagonal-heuristic configuration.
func DefaultOptions() HHLOptions {
	return HHLOptions{
		EigenTolerance: DefaultEigenTolerance,
		EigenMaxIter:   DefaultEigenMaxIter,
	}
}

// WithJacobiEigenvalues enables Jacobi eigenvalue estimates for symmetric input.
func WithJacobiEigenvalues() Option {
	return func(o *HHLOptions) { o.JacobiEigenvalues = true }
}

// WithEigenTolerance sets the Jacobi tolerance; tol must be > 0.
func WithEigenTolerance(tol float64) Option {
	return func(o *HHLOptions) {
		if !(tol > 0) {
			o.err = fmt.Errorf("%w: eigen tolerance %g must be > 0", ErrOptionViolation, tol)
			return
		}
		o.EigenTolerance = tol
	}
}

// WithEigenMaxIter sets the Jacobi rotation cap; n must be > 0.
func WithEigenMaxIter(n int) Option {
	return func(o *HHLOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: eigen max iterations %d must be > 0", ErrOptionViolation, n)
			return
		}
		o.EigenMaxIter = n
	}
}
