// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/matrix"
)

// HHL heuristic constants.
const (
	// EigenFloor is the lower bound of every eigenvalue estimate.
	EigenFloor = 0.1
	// AmplitudeCap bounds the inverted amplitude 1/|λ|.
	AmplitudeCap = 5.0
	// ClockQubits is the width of the clock and eigen marker registers.
	ClockQubits = 3
	// MarkSteps is the number of marking ticks in QPE and in inverse QPE.
	MarkSteps = 2
)

// Register cell symbols.
const (
	SymbolIdle     = "0"
	SymbolHadamard = "H"
	SymbolPhase    = "φ"
	SymbolRotated  = "R"
)

// TotalHHLTicks is the fixed tick count of an HHL run.
const TotalHHLTicks = 1 + (MarkSteps + 1) + 1 + (MarkSteps + 1) + 1

// HHL is a fixed-schedule, non-physical stand-in for the HHL solver.
type HHL struct {
	machine.Base
	opts HHLOptions

	m0 *matrix.Dense
	b0 []float64
	n  int

	sub         int // ticks spent in the current marking phase
	clock       []string
	eigen       []string
	eigenvalues []float64
	ancilla     []string
	probs       []float64
	solution    []float64
}

// NewHHL validates (m, b) and returns an HHL machine in PhaseInit.
//
// Errors:
//   - ErrNonSquare, ErrSizeOutOfRange, ErrVectorLength, ErrNonFinite.
//   - ErrOptionViolation: an option rejected its argument.
func NewHHL(m [][]float64, b []float64, opts ...Option) (*HHL, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	dense, vec, err := parseSystem(m, b)
	if err != nil {
		return nil, err
	}
	h := &HHL{opts: o, m0: dense, b0: vec, n: dense.Rows()}
	h.Reset()

	return h, nil
}

// Reset clears every register.
func (h *HHL) Reset() {
	h.Base = machine.NewBase(NameHHL, PhaseInit, "registers initialized to |0⟩")
	h.sub = 0
	h.clock = idle(ClockQubits)
	h.eigen = idle(ClockQubits)
	h.eigenvalues = make([]float64, h.n)
	h.ancilla = idle(1)
	h.probs = make([]float64, h.n)
	h.solution = nil
}

func idle(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = SymbolIdle
	}

	return out
}

// Step advances the fixed nine-tick schedule.
func (h *HHL) Step() {
	if !h.Begin() {
		return
	}
	switch h.Phase() {
	case PhaseInit:
		for i := range h.clock {
			h.clock[i] = SymbolHadamard
		}
		h.sub = 0
		h.Enter(PhaseQPE, "clock register in superposition")

	case PhaseQPE:
		if h.sub < MarkSteps {
			h.eigen[h.sub] = SymbolPhase
			h.sub++
			h.Say(fmt.Sprintf("phase kickback on eigen qubit %d", h.sub-1))
			return
		}
		h.eigenvalues = h.estimateEigenvalues()
		h.Enter(PhaseRotation, fmt.Sprintf("eigenvalues estimated: %s", fmtVec(h.eigenvalues)))

	case PhaseRotation:
		h.ancilla[0] = SymbolRotated
		h.sub = 0
		h.Enter(PhaseIQPE, "ancilla rotated by 1/λ")

	case PhaseIQPE:
		if h.sub < MarkSteps {
			cell := MarkSteps - 1 - h.sub
			h.eigen[cell] = SymbolIdle
			h.sub++
			h.Say(fmt.Sprintf("uncomputed eigen qubit %d", cell))
			return
		}
		h.probs = inversionProbabilities(h.eigenvalues)
		h.Enter(PhaseMeasurement, "eigen register uncomputed")

	case PhaseMeasurement:
		h.solution = measure(h.probs, h.b0)
		h.Finish(machine.Result{
			Solved:     true,
			Steps:      h.Steps(),
			Complexity: ComplexityHHL,
			Index:      -1,
			Solution:   h.solution,
		}, fmt.Sprintf("measured solution %s", fmtVec(h.solution)))
	}
}

// estimateEigenvalues returns max(EigenFloor, |λ_i|) per basis index.
//
// The default estimate is the diagonal magnitude |M[i][i]|. With
// JacobiEigenvalues and a symmetric M, the Jacobi eigenvalues are used
// instead; any Jacobi failure falls back to the diagonal.
func (h *HHL) estimateEigenvalues() []float64 {
	est := h.m0.Diagonal()
	if h.opts.JacobiEigenvalues {
		if vals, _, err := matrix.Eigen(h.m0, h.opts.EigenTolerance, h.opts.EigenMaxIter); err == nil {
			est = vals
		}
	}
	for i, v := range est {
		est[i] = math.Max(EigenFloor, math.Abs(v))
	}

	return est
}

// inversionProbabilities computes amp_i = min(1/|λ_i|, AmplitudeCap) and
// returns amp_i² normalized to sum 1.
func inversionProbabilities(eigenvalues []float64) []float64 {
	p := make([]float64, len(eigenvalues))
	var sum float64
	for i, l := range eigenvalues {
		a := math.Min(1/math.Abs(l), AmplitudeCap)
		p[i] = a * a
		sum += p[i]
	}
	for i := range p {
		p[i] /= sum
	}

	return p
}

// measure converts probabilities into a solution rescaled to max(b).
func measure(probs, b []float64) []float64 {
	x := make([]float64, len(probs))
	var norm float64
	for i, p := range probs {
		x[i] = math.Sqrt(p)
		norm += x[i] * x[i]
	}
	norm = math.Sqrt(norm)
	var peak float64
	for i := range x {
		if norm > machine.Epsilon {
			x[i] /= norm
		}
		peak = math.Max(peak, x[i])
	}
	target := b[0]
	for _, v := range b[1:] {
		target = math.Max(target, v)
	}
	if peak < machine.Epsilon {
		return x
	}
	scale := target / peak
	for i := range x {
		x[i] *= scale
	}

	return x
}

func fmtVec(v []float64) string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.4g", x)
	}

	return s + "]"
}

// Eigenvalues returns a copy of the eigenvalue estimates (zeros before QPE completes).
func (h *HHL) Eigenvalues() []float64 { return append([]float64(nil), h.eigenvalues...) }

// Probabilities returns a copy of the inverted-amplitude probabilities.
func (h *HHL) Probabilities() []float64 { return append([]float64(nil), h.probs...) }

// Snapshot returns all HHL registers.
func (h *HHL) Snapshot() machine.Snapshot {
	return h.Base.Snapshot(
		machine.LabelRegister(RegClock, h.clock),
		machine.LabelRegister(RegEigen, h.eigen),
		machine.NumericRegister(RegEigenvalues, h.eigenvalues),
		machine.LabelRegister(RegAncilla, h.ancilla),
		machine.NumericRegister(RegProbabilities, h.probs),
		machine.NumericRegister(RegSolution, h.solution),
	)
}

var _ machine.Machine = (*HHL)(nil)
