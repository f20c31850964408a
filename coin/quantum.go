// SPDX-License-Identifier: MIT

package coin

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qstep/machine"
)

// Quantum walks each toss through StagesPerToss ticks; the last one measures.
type Quantum struct {
	machine.Base
	trials   int
	seed     int64
	rng      *rand.Rand
	stages   []string // current stage per toss, "" before it starts
	outcomes []string
}

// NewQuantum validates trials and seeds the measurement stream.
//
// Errors: ErrTrials.
func NewQuantum(trials int, seed int64) (*Quantum, error) {
	if err := validate(trials); err != nil {
		return nil, err
	}
	m := &Quantum{trials: trials, seed: seed}
	m.Reset()

	return m, nil
}

// Reset reseeds the stream and returns every qubit to not-started.
func (m *Quantum) Reset() {
	m.Base = machine.NewBase(NameQuantum, PhaseTossing, fmt.Sprintf("%d qubit measurements", m.trials))
	m.rng = rngFromSeed(deriveSeed(m.seed, streamQuantum))
	m.stages = make([]string, m.trials)
	m.outcomes = make([]string, 0, m.trials)
}

// Step advances the current toss by one stage.
func (m *Quantum) Step() {
	if !m.Begin() {
		return
	}
	tick := m.Steps() - 1
	toss, idx := tick/StagesPerToss, tick%StagesPerToss
	stage := stageOrder[idx]
	m.stages[toss] = string(stage)

	if stage != StageMeasured {
		m.Say(fmt.Sprintf("qubit %d: %s", toss+1, stage))
		return
	}
	o := One
	if fair(m.rng) {
		o = Zero
	}
	m.outcomes = append(m.outcomes, o)
	if len(m.outcomes) < m.trials {
		m.Say(fmt.Sprintf("qubit %d measured %s", toss+1, o))
		return
	}
	t := Tally(m.outcomes)
	m.Finish(machine.Result{
		Solved:     true,
		Steps:      m.Steps(),
		Complexity: Complexity,
		Index:      -1,
		Outcomes:   m.outcomes,
	}, fmt.Sprintf("|0⟩: %d | |1⟩: %d", t[Zero], t[One]))
}

// Outcomes returns a copy of the measured outcomes so far.
func (m *Quantum) Outcomes() []string { return append([]string(nil), m.outcomes...) }

// Stages returns a copy of the current stage per toss.
func (m *Quantum) Stages() []string { return append([]string(nil), m.stages...) }

// Snapshot returns the stage and outcome registers.
func (m *Quantum) Snapshot() machine.Snapshot {
	return m.Base.Snapshot(
		machine.LabelRegister(RegStages, m.stages),
		machine.LabelRegister(RegOutcomes, m.outcomes),
	)
}

var _ machine.Machine = (*Quantum)(nil)
