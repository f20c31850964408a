// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"

	"github.com/katalvlaran/qstep/machine"
)

// Trial factors n by trial division.
//
// Per tick the remainder is tested against divisor d. A hit records d and
// divides (d is kept); a miss increments d, and when d*d exceeds the
// remainder the remainder is recorded as prime on that same tick.
type Trial struct {
	machine.Base
	n         int
	remainder int64
	divisor   int64
	factors   []int
}

// NewTrial validates n and returns a Trial machine.
//
// Errors: ErrOutOfRange.
func NewTrial(n int) (*Trial, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	m := &Trial{n: n}
	m.Reset()

	return m, nil
}

// Reset restores remainder n and divisor 2.
func (m *Trial) Reset() {
	m.Base = machine.NewBase(NameTrial, PhaseRunning, fmt.Sprintf("factoring %d by trial division", m.n))
	m.remainder = int64(m.n)
	m.divisor = 2
	m.factors = nil
}

// Step performs one divisibility check.
func (m *Trial) Step() {
	if !m.Begin() {
		return
	}
	r, d := m.remainder, m.divisor
	if r%d == 0 {
		m.factors = append(m.factors, int(d))
		m.remainder = r / d
		if m.remainder == 1 {
			m.finish()
			return
		}
		m.Say(fmt.Sprintf("Is %d divisible by %d? yes, %d remains", r, d, m.remainder))
		return
	}

	m.divisor++
	if m.divisor*m.divisor > r {
		m.factors = append(m.factors, int(r))
		m.remainder = 1
		m.finish()
		return
	}
	m.Say(fmt.Sprintf("Is %d divisible by %d? no", r, d))
}

func (m *Trial) finish() {
	m.Finish(machine.Result{
		Solved:     true,
		Steps:      m.Steps(),
		Complexity: ComplexityTrial,
		Index:      -1,
		Factors:    m.factors,
	}, fmt.Sprintf("%d = %s", m.n, joinFactors(m.factors)))
}

func joinFactors(fs []int) string {
	s := ""
	for i, f := range fs {
		if i > 0 {
			s += " × "
		}
		s += fmt.Sprint(f)
	}

	return s
}

// Factors returns a copy of the factors recorded so far.
func (m *Trial) Factors() []int { return append([]int(nil), m.factors...) }

// Snapshot returns the factors and [remainder, divisor].
func (m *Trial) Snapshot() machine.Snapshot {
	return m.Base.Snapshot(
		machine.IntRegister(RegFactors, m.factors),
		machine.IntRegister(RegState, []int{int(m.remainder), int(m.divisor)}),
	)
}

var _ machine.Machine = (*Trial)(nil)
