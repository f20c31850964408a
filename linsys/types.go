// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/matrix"
)

// Accepted system sizes.
const (
	MinSize = 2
	MaxSize = 4
)

// Sentinel errors; all wrap machine.ErrInvalidInput except ErrOptionViolation.
var (
	ErrNonSquare       = machine.InvalidInput("linsys: matrix is not square")
	ErrSizeOutOfRange  = machine.InvalidInput("linsys: system size out of range")
	ErrVectorLength    = machine.InvalidInput("linsys: vector length does not match matrix")
	ErrNonFinite       = machine.InvalidInput("linsys: NaN or Inf entry")
	ErrOptionViolation = errors.New("linsys: invalid option")
)

// Phases of the linear-system machines.
const (
	PhaseInit        machine.Phase = "init"
	PhaseForward     machine.Phase = "forward"
	PhaseBackward    machine.Phase = "backward"
	PhaseQPE         machine.Phase = "qpe"
	PhaseRotation    machine.Phase = "rotation"
	PhaseIQPE        machine.Phase = "iqpe"
	PhaseMeasurement machine.Phase = "measurement"
)

// Machine names.
const (
	NameGauss = "gaussian-elimination"
	NameHHL   = "hhl"
)

// Complexity labels.
const (
	ComplexityGauss = "O(n^3)"
	ComplexityHHL   = "O(log n)"
)

// ReasonSingular is the Result.Reason of a singular Gaussian system.
const ReasonSingular = "singular matrix"

// Register names exposed in snapshots.
const (
	RegMatrix        = "matrix" // row-major flattened
	RegVector        = "vector"
	RegPivot         = "pivot" // [row, col]
	RegClock         = "clock"
	RegEigen         = "eigen"
	RegEigenvalues   = "eigenvalues"
	RegAncilla       = "ancilla"
	RegProbabilities = "probabilities"
	RegSolution      = "solution"
)

// parseSystem validates (m, b) and returns private copies.
//
// Validation order: shape (non-empty, square), size range, vector length,
// finiteness of every entry.
func parseSystem(m [][]float64, b []float64) (*matrix.Dense, []float64, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
	}
	if n < MinSize || n > MaxSize {
		return nil, nil, fmt.Errorf("%w: n=%d, want %d..%d", ErrSizeOutOfRange, n, MinSize, MaxSize)
	}
	if len(b) != n {
		return nil, nil, fmt.Errorf("%w: len(b)=%d, n=%d", ErrVectorLength, len(b), n)
	}
	dense, err := matrix.FromRows(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: matrix: %v", ErrNonFinite, err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, nil, fmt.Errorf("%w: vector: %v", ErrNonFinite, err)
	}

	return dense, append([]float64(nil), b...), nil
}

func flatten(m *matrix.Dense) []float64 {
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		out = append(out, m.Row(i)...)
	}

	return out
}
