// SPDX-License-Identifier: MIT

package coin

import (
	"fmt"

	"github.com/katalvlaran/qstep/machine"
)

// Accepted trial counts.
const (
	MinTrials = 1
	MaxTrials = 1000
)

// ErrTrials is returned for a trial count outside [MinTrials, MaxTrials].
var ErrTrials = machine.InvalidInput("coin: trials out of range")

// PhaseTossing is the only non-terminal phase.
const PhaseTossing machine.Phase = "tossing"

// Machine names and complexity label.
const (
	NameClassical = "coin-classical"
	NameQuantum   = "coin-quantum"
	Complexity    = "O(n)"
)

// Outcome labels.
const (
	Heads = "Heads"
	Tails = "Tails"
	Zero  = "|0⟩"
	One   = "|1⟩"
)

// Stage of a quantum toss.
type Stage string

// Quantum toss stages in tick order.
const (
	StageInit          Stage = "init"
	StageHadamard      Stage = "hadamard"
	StageSuperposition Stage = "superposition"
	StageMeasured      Stage = "measured"
)

// StagesPerToss is the number of ticks one quantum toss takes.
const StagesPerToss = 4

var stageOrder = [StagesPerToss]Stage{StageInit, StageHadamard, StageSuperposition, StageMeasured}

// Register names exposed in snapshots.
const (
	RegOutcomes = "outcomes"
	RegStages   = "stages"
)

func validate(trials int) error {
	if trials < MinTrials || trials > MaxTrials {
		return fmt.Errorf("%w: trials=%d, want %d..%d", ErrTrials, trials, MinTrials, MaxTrials)
	}

	return nil
}

// Tally counts outcomes by label.
func Tally(outcomes []string) map[string]int {
	out := make(map[string]int, 2)
	for _, o := range outcomes {
		out[o]++
	}

	return out
}
