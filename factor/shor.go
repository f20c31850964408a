// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qstep/machine"
)

// Bases tried, in order, by the Shor walk-through.
var Bases = []int64{2, 7, 11}

// SequenceLength is the number of a^x mod n terms computed per base.
const SequenceLength = 8

// StageKind classifies a Shor stage.
type StageKind string

// Stage kinds in the order they can appear.
const (
	StageInit          StageKind = "initialization"
	StageSuperposition StageKind = "superposition"
	StageQFT           StageKind = "quantum_fourier"
	StageGCD           StageKind = "gcd_check"
	StageDirect        StageKind = "direct_factor"
	StagePeriodFinding StageKind = "period_finding"
	StagePeriod        StageKind = "period_detection"
	StageFactors       StageKind = "factor_computation"
	StagePrimes        StageKind = "prime_factorization"
	StageFallback      StageKind = "fallback"
	StageComplete      StageKind = "complete"
)

// Stage is one revealed step of the Shor walk-through.
type Stage struct {
	Kind         StageKind `json:"kind"`
	Message      string    `json:"message"`
	Calculations []string  `json:"calculations,omitempty"`
	Sequence     []int     `json:"sequence,omitempty"`
}

// Plan computes the full stage list and the factorization of n.
//
// Errors: ErrOutOfRange.
func Plan(n int) ([]Stage, []int, error) {
	if err := validate(n); err != nil {
		return nil, nil, err
	}
	nn := int64(n)
	stages := []Stage{
		{Kind: StageInit, Message: "Initialize quantum state", Calculations: []string{"|ψ₀⟩ = |1⟩ ⊗ |0⟩"}},
		{Kind: StageSuperposition, Message: "Create superposition", Calculations: []string{"|ψ₁⟩ = H⊗ⁿ|ψ₀⟩ = Σᵢ|i⟩|0⟩"}},
		{Kind: StageQFT, Message: "Apply quantum Fourier transform", Calculations: []string{"QFT|x⟩ = Σᵣ e^(2πixr/N)|r⟩"}},
	}

	var factors []int
	for _, a := range Bases {
		g := gcd(a, nn)
		stages = append(stages, Stage{
			Kind:         StageGCD,
			Message:      fmt.Sprintf("Check if base %d shares factors with %d", a, n),
			Calculations: []string{fmt.Sprintf("gcd(%d, %d) = %d", a, n, g)},
		})
		if g > 1 {
			factors = append(primeFactors(g), primeFactors(nn/g)...)
			stages = append(stages, Stage{
				Kind:         StageDirect,
				Message:      "Direct factor found through gcd",
				Calculations: []string{fmt.Sprintf("%d = %d × %d", n, g, nn/g)},
			})
			break
		}

		seq := make([]int, SequenceLength)
		for x := range seq {
			seq[x] = int(modPow(a, int64(x), nn))
		}
		stages = append(stages, Stage{
			Kind:     StagePeriodFinding,
			Message:  fmt.Sprintf("Quantum period finding (base %d): f(x) = %d^x mod %d", a, a, n),
			Sequence: seq,
		})

		r := findPeriod(seq)
		if r == 0 {
			continue
		}
		stages = append(stages, Stage{
			Kind:         StagePeriod,
			Message:      fmt.Sprintf("Found period r = %d", r),
			Calculations: []string{fmt.Sprintf("%d^%d ≡ 1 (mod %d)", a, r, n)},
		})
		if r%2 != 0 {
			continue
		}
		x := modPow(a, int64(r/2), nn)
		if x == nn-1 {
			continue
		}
		f1, f2 := gcd(x-1, nn), gcd(x+1, nn)
		stages = append(stages, Stage{
			Kind:    StageFactors,
			Message: "Computing factors using period",
			Calculations: []string{
				fmt.Sprintf("x = %d^(%d/2) mod %d = %d", a, r, n, x),
				fmt.Sprintf("factor₁ = gcd(x-1, n) = %d", f1),
				fmt.Sprintf("factor₂ = gcd(x+1, n) = %d", f2),
			},
		})
		if f1 <= 1 || f2 <= 1 {
			continue
		}
		p1, p2 := primeFactors(f1), primeFactors(nn/f1)
		factors = append(p1, p2...)
		stages = append(stages, Stage{
			Kind:    StagePrimes,
			Message: "Breaking down into prime factors",
			Calculations: []string{
				fmt.Sprintf("%d = %s", f1, joinFactors(p1)),
				fmt.Sprintf("%d = %s", nn/f1, joinFactors(p2)),
			},
		})
		break
	}

	if factors == nil {
		factors = primeFactors(nn)
		stages = append(stages, Stage{
			Kind:         StageFallback,
			Message:      "Quantum period not found, using classical trial division",
			Calculations: []string{"falling back to trial division"},
		})
	}
	sort.Ints(factors)
	stages = append(stages, Stage{
		Kind:         StageComplete,
		Message:      "Factorization complete",
		Calculations: []string{fmt.Sprintf("%d = %s", n, joinFactors(factors))},
	})

	return stages, factors, nil
}

// findPeriod returns the first r in [2, len(seq)) with seq[r] == 1, else 0.
func findPeriod(seq []int) int {
	for r := 2; r < len(seq); r++ {
		if seq[r] == 1 {
			return r
		}
	}

	return 0
}

// Shor reveals the Plan stages one per tick.
type Shor struct {
	machine.Base
	n        int
	stages   []Stage
	factors  []int
	revealed int
}

// NewShor validates n and returns a Shor machine.
//
// Errors: ErrOutOfRange.
func NewShor(n int) (*Shor, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	m := &Shor{n: n}
	m.Reset()

	return m, nil
}

// Reset re-derives the stage list and hides every stage.
func (m *Shor) Reset() {
	m.Base = machine.NewBase(NameShor, PhaseRunning, fmt.Sprintf("factoring %d by period finding", m.n))
	m.stages, m.factors, _ = Plan(m.n)
	m.revealed = 0
}

// Step reveals the next stage; the final stage completes.
func (m *Shor) Step() {
	if !m.Begin() {
		return
	}
	st := m.stages[m.revealed]
	m.revealed++
	if m.revealed < len(m.stages) {
		m.Say(st.Message)
		return
	}
	m.Finish(machine.Result{
		Solved:     true,
		Steps:      len(m.stages),
		Complexity: ComplexityShor,
		Index:      -1,
		Factors:    m.factors,
	}, st.Calculations[0])
}

// Stages returns copies of the revealed stages.
func (m *Shor) Stages() []Stage {
	out := make([]Stage, m.revealed)
	for i, s := range m.stages[:m.revealed] {
		s.Calculations = append([]string(nil), s.Calculations...)
		s.Sequence = append([]int(nil), s.Sequence...)
		out[i] = s
	}

	return out
}

// Snapshot returns the revealed stage kinds, the newest sequence and,
// once complete, the factors.
func (m *Shor) Snapshot() machine.Snapshot {
	kinds := make([]string, m.revealed)
	var seq []int
	for i, s := range m.stages[:m.revealed] {
		kinds[i] = string(s.Kind)
		if s.Sequence != nil {
			seq = s.Sequence
		}
	}
	var factors []int
	if m.IsComplete() {
		factors = m.factors
	}

	return m.Base.Snapshot(
		machine.LabelRegister(RegStages, kinds),
		machine.IntRegister(RegSequence, seq),
		machine.IntRegister(RegFactors, factors),
	)
}

var _ machine.Machine = (*Shor)(nil)
