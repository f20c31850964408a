// SPDX-License-Identifier: MIT

package coin

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qstep/machine"
)

// Classical tosses a fair coin once per tick.
type Classical struct {
	machine.Base
	trials   int
	seed     int64
	rng      *rand.Rand
	outcomes []string
}

// NewClassical validates trials and seeds the outcome stream.
//
// Errors: ErrTrials.
func NewClassical(trials int, seed int64) (*Classical, error) {
	if err := validate(trials); err != nil {
		return nil, err
	}
	m := &Classical{trials: trials, seed: seed}
	m.Reset()

	return m, nil
}

// Reset reseeds the stream and clears the outcomes.
func (m *Classical) Reset() {
	m.Base = machine.NewBase(NameClassical, PhaseTossing, fmt.Sprintf("%d tosses of a fair coin", m.trials))
	m.rng = rngFromSeed(deriveSeed(m.seed, streamClassical))
	m.outcomes = make([]string, 0, m.trials)
}

// Step tosses once; the last toss completes.
func (m *Classical) Step() {
	if !m.Begin() {
		return
	}
	o := Tails
	if fair(m.rng) {
		o = Heads
	}
	m.outcomes = append(m.outcomes, o)
	if len(m.outcomes) < m.trials {
		m.Say(fmt.Sprintf("toss %d: %s", len(m.outcomes), o))
		return
	}
	t := Tally(m.outcomes)
	m.Finish(machine.Result{
		Solved:     true,
		Steps:      m.Steps(),
		Complexity: Complexity,
		Index:      -1,
		Outcomes:   m.outcomes,
	}, fmt.Sprintf("Heads: %d | Tails: %d", t[Heads], t[Tails]))
}

// Outcomes returns a copy of the outcomes so far.
func (m *Classical) Outcomes() []string { return append([]string(nil), m.outcomes...) }

// Snapshot returns the outcomes register.
func (m *Classical) Snapshot() machine.Snapshot {
	return m.Base.Snapshot(machine.LabelRegister(RegOutcomes, m.outcomes))
}

var _ machine.Machine = (*Classical)(nil)
