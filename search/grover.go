// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstep/machine"
)

// Amplification constants of the Grover stand-in.
const (
	GroverBoost     = 1.5
	GroverCap       = 0.9
	GroverDamp      = 0.9
	GroverFloorBase = 0.1 // floor is GroverFloorBase / n
)

// Grover amplifies the target amplitude for ceil(sqrt(n)) ticks and measures
// on the last one.
type Grover[T comparable] struct {
	machine.Base
	values    []T
	target    T
	targetIdx int
	required  int
	iteration int
	amps      []float64
	probs     []float64
}

// NewGrover validates input and returns a Grover machine with uniform amplitudes.
//
// Errors:
//   - ErrEmptySequence: len(values) == 0.
func NewGrover[T comparable](values []T, target T) (*Grover[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	m := &Grover[T]{
		values: append([]T(nil), values...),
		target: target,
	}
	m.targetIdx = indexOf(m.values, target)
	m.required = int(math.Ceil(math.Sqrt(float64(len(m.values)))))
	m.Reset()

	return m, nil
}

// Reset restores uniform amplitudes 1/sqrt(n) and zero iterations.
func (m *Grover[T]) Reset() {
	n := len(m.values)
	m.Base = machine.NewBase(NameGrover, PhaseRunning, fmt.Sprintf("uniform superposition over %d states", n))
	m.iteration = 0
	m.amps = make([]float64, n)
	m.probs = make([]float64, n)
	a := 1 / math.Sqrt(float64(n))
	for i := range m.amps {
		m.amps[i] = a
		m.probs[i] = a * a
	}
}

// Step runs one amplification round; the required-th round also measures.
func (m *Grover[T]) Step() {
	if !m.Begin() {
		return
	}
	m.amplify()
	m.iteration++

	if m.iteration < m.required {
		m.Say(fmt.Sprintf("iteration %d/%d", m.iteration, m.required))
		return
	}
	idx := argmax(m.probs)
	found := m.values[idx] == m.target
	msg := fmt.Sprintf("measured index %d (p=%.3f)", idx, m.probs[idx])
	m.Finish(machine.Result{
		Solved:     found,
		Steps:      m.iteration,
		Complexity: ComplexityGrover,
		Index:      idx,
	}, msg)
}

// amplify applies one oracle+diffusion stand-in and renormalizes.
func (m *Grover[T]) amplify() {
	n := float64(len(m.amps))
	floor := GroverFloorBase / n
	for i, a := range m.amps {
		if i == m.targetIdx {
			m.amps[i] = math.Min(a*GroverBoost, GroverCap)
		} else {
			m.amps[i] = math.Max(a*GroverDamp, floor)
		}
	}
	var norm float64
	for _, a := range m.amps {
		norm += a * a
	}
	norm = math.Sqrt(norm)
	for i := range m.amps {
		if norm > machine.Epsilon {
			m.amps[i] /= norm
		}
		m.probs[i] = m.amps[i] * m.amps[i]
	}
}

// argmax returns the first index of the maximum value.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}

	return best
}

// Iteration returns the completed amplification rounds.
func (m *Grover[T]) Iteration() int { return m.iteration }

// Required returns ceil(sqrt(n)).
func (m *Grover[T]) Required() int { return m.required }

// TargetIndex returns the first index of the target, -1 if absent.
func (m *Grover[T]) TargetIndex() int { return m.targetIdx }

// Probabilities returns a copy of the current probability vector.
func (m *Grover[T]) Probabilities() []float64 { return append([]float64(nil), m.probs...) }

// Snapshot returns the amplitude and probability registers.
func (m *Grover[T]) Snapshot() machine.Snapshot {
	return m.Base.Snapshot(
		machine.LabelRegister(RegValues, labels(m.values)),
		machine.NumericRegister(RegAmplitudes, m.amps),
		machine.NumericRegister(RegProbabilities, m.probs),
	)
}

var _ machine.Machine = (*Grover[string])(nil)
