// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/qstep/machine"
)

// Linear scans values left to right, one index per tick.
//
// Termination: steps == first-match-index+1 if target is present, else len(values).
// The tick that checks the last index without a match completes the machine.
type Linear[T comparable] struct {
	machine.Base
	values  []T
	target  T
	cursor  int
	checked []int
}

// NewLinear validates input and returns a Linear machine in PhaseRunning.
//
// Errors:
//   - ErrEmptySequence: len(values) == 0.
func NewLinear[T comparable](values []T, target T) (*Linear[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	m := &Linear[T]{
		values: append([]T(nil), values...),
		target: target,
	}
	m.Reset()

	return m, nil
}

// Reset returns the machine to its post-construction state.
func (m *Linear[T]) Reset() {
	m.Base = machine.NewBase(NameLinear, PhaseRunning, fmt.Sprintf("searching %d values for %v", len(m.values), m.target))
	m.cursor = -1
	m.checked = make([]int, 0, len(m.values))
}

// Step checks the next index.
func (m *Linear[T]) Step() {
	if !m.Begin() {
		return
	}
	m.cursor++
	m.checked = append(m.checked, m.cursor)

	if m.values[m.cursor] == m.target {
		m.Finish(machine.Result{
			Solved:     true,
			Steps:      len(m.checked),
			Complexity: ComplexityLinear,
			Index:      m.cursor,
		}, fmt.Sprintf("found %v at index %d", m.target, m.cursor))
		return
	}
	if m.cursor == len(m.values)-1 {
		m.Finish(machine.Result{
			Solved:     false,
			Steps:      len(m.checked),
			Complexity: ComplexityLinear,
			Index:      -1,
		}, fmt.Sprintf("%v not found", m.target))
		return
	}
	m.Say(fmt.Sprintf("index %d: %v != %v", m.cursor, m.values[m.cursor], m.target))
}

// Cursor returns the last checked index, -1 before the first tick.
func (m *Linear[T]) Cursor() int { return m.cursor }

// Checked returns a copy of the checked indices in visit order.
func (m *Linear[T]) Checked() []int { return append([]int(nil), m.checked...) }

// Snapshot returns the values, checked indices and bookkeeping.
func (m *Linear[T]) Snapshot() machine.Snapshot {
	return m.Base.Snapshot(
		machine.LabelRegister(RegValues, labels(m.values)),
		machine.IntRegister(RegChecked, m.checked),
	)
}

var _ machine.Machine = (*Linear[int])(nil)
