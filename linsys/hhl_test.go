// SPDX-License-Identifier: MIT

package linsys_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/linsys"
	"github.com/katalvlaran/qstep/machine"
)

func TestHHL_Schedule(t *testing.T) {
	h, err := linsys.NewHHL(demoM, demoB)
	require.NoError(t, err)
	require.Equal(t, 9, linsys.TotalHHLTicks)

	want := []machine.Phase{
		linsys.PhaseQPE, linsys.PhaseQPE, linsys.PhaseQPE,
		linsys.PhaseRotation,
		linsys.PhaseIQPE, linsys.PhaseIQPE, linsys.PhaseIQPE,
		linsys.PhaseMeasurement,
		machine.Complete,
	}
	for i, p := range want {
		h.Step()
		require.Equal(t, p, h.Phase(), "tick %d", i+1)
	}
	h.Step()
	assert.Equal(t, 9, h.Steps())
}

func TestHHL_Registers(t *testing.T) {
	h, _ := linsys.NewHHL(demoM, demoB)
	get := func(name string) machine.Register {
		r, ok := h.Snapshot().Register(name)
		require.True(t, ok, name)
		return r
	}

	assert.Equal(t, []string{"0", "0", "0"}, get(linsys.RegClock).Labels)
	h.Step()
	assert.Equal(t, []string{"H", "H", "H"}, get(linsys.RegClock).Labels)
	h.Step()
	h.Step()
	assert.Equal(t, []string{"φ", "φ", "0"}, get(linsys.RegEigen).Labels)
	assert.Equal(t, []float64{0, 0, 0}, get(linsys.RegEigenvalues).Values)
	h.Step()
	assert.Equal(t, []float64{4, 3, 2}, get(linsys.RegEigenvalues).Values)
	h.Step()
	assert.Equal(t, []string{"R"}, get(linsys.RegAncilla).Labels)
	h.Step()
	assert.Equal(t, []string{"φ", "0", "0"}, get(linsys.RegEigen).Labels)
	h.Step()
	h.Step()
	assert.Equal(t, []string{"0", "0", "0"}, get(linsys.RegEigen).Labels)

	var sum float64
	for _, p := range h.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestHHL_DemoSolution(t *testing.T) {
	h, _ := linsys.NewHHL(demoM, demoB)
	machine.Run(h, 0)
	res, ok := h.Result()
	require.True(t, ok)
	assert.True(t, res.Solved)
	assert.Equal(t, 9, res.Steps)
	assert.Equal(t, linsys.ComplexityHHL, res.Complexity)
	// amplitudes 1/4, 1/3, 1/2 rescaled so the peak equals max(b) = 6
	assert.InDeltaSlice(t, []float64{3, 4, 6}, res.Solution, 1e-9)
}

func TestHHL_FloorAndCap(t *testing.T) {
	h, _ := linsys.NewHHL([][]float64{{0, 1}, {1, 0.05}}, []float64{2, 1})
	machine.Run(h, 0)
	assert.Equal(t, []float64{0.1, 0.1}, h.Eigenvalues())
	res, _ := h.Result()
	assert.True(t, res.Solved, "never detects singular input")
	assert.InDeltaSlice(t, []float64{2, 2}, res.Solution, 1e-9)
}

func TestHHL_JacobiEigenvalues(t *testing.T) {
	h, err := linsys.NewHHL(demoM, demoB, linsys.WithJacobiEigenvalues())
	require.NoError(t, err)
	machine.Run(h, 0)
	vals := h.Eigenvalues()
	var trace float64
	for _, v := range vals {
		trace += v
	}
	assert.InDelta(t, 9.0, trace, 1e-9)
	sort.Float64s(vals)
	assert.NotEqual(t, []float64{2, 3, 4}, vals)

	// asymmetric input falls back to the diagonal
	asym, _ := linsys.NewHHL([][]float64{{2, 5}, {0, 3}}, []float64{1, 1}, linsys.WithJacobiEigenvalues())
	machine.Run(asym, 0)
	assert.Equal(t, []float64{2, 3}, asym.Eigenvalues())
}

func TestHHL_Options(t *testing.T) {
	_, err := linsys.NewHHL(demoM, demoB, linsys.WithEigenTolerance(0))
	require.ErrorIs(t, err, linsys.ErrOptionViolation)
	assert.False(t, errors.Is(err, machine.ErrInvalidInput))

	_, err = linsys.NewHHL(demoM, demoB, linsys.WithEigenMaxIter(-1))
	require.ErrorIs(t, err, linsys.ErrOptionViolation)

	_, err = linsys.NewHHL(demoM, demoB, linsys.WithEigenTolerance(1e-9), linsys.WithEigenMaxIter(50))
	require.NoError(t, err)
}

func TestHHL_Reset(t *testing.T) {
	h, _ := linsys.NewHHL(demoM, demoB)
	fresh := h.Snapshot()
	machine.Run(h, 0)
	first, _ := h.Result()
	h.Reset()
	assert.Equal(t, fresh, h.Snapshot())
	machine.Run(h, 0)
	second, _ := h.Result()
	assert.Equal(t, first, second)
}
