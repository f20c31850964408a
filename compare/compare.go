// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qstep/machine"
)

// Problem names the kind of problem both machines solved.
type Problem string

// Problem kinds.
const (
	Search Problem = "search"
	Linear Problem = "linear"
	Path   Problem = "path"
	Factor Problem = "factor"
	Coin   Problem = "coin"
)

// NotAvailable labels an undefined ratio.
const NotAvailable = "N/A"

// Narrative thresholds, in percent of relative error.
const (
	CloseErrorPct    = 5.0
	ModerateErrorPct = 15.0
)

// Theory is the textbook complexity pair for a problem kind.
type Theory struct {
	Classical string `json:"classical"`
	Quantum   string `json:"quantum"`
}

// Comparison is the aggregate of one classical/quantum pair.
type Comparison struct {
	Problem        Problem `json:"problem"`
	Size           int     `json:"size"`
	ClassicalSteps int     `json:"classical_steps"`
	QuantumSteps   int     `json:"quantum_steps"`
	// ClassicalDone and QuantumDone report whether a terminal Result was
	// supplied; see Finished.
	ClassicalDone bool `json:"classical_done"`
	QuantumDone   bool `json:"quantum_done"`

	Speedup      float64 `json:"speedup"`
	HasSpeedup   bool    `json:"has_speedup"`
	SpeedupLabel string  `json:"speedup_label"`
	QuantumWins  bool    `json:"quantum_wins"`

	// RelativeError is a fraction; ErrorLabel renders it as a percentage.
	RelativeError float64 `json:"relative_error"`
	HasError      bool    `json:"has_error"`
	ErrorLabel    string  `json:"error_label"`

	Theory             Theory `json:"theory"`
	TheoreticalSpeedup string `json:"theoretical_speedup"`
	Narrative          string `json:"narrative"`
}

var theories = map[Problem]Theory{
	Search: {Classical: "O(n)", Quantum: "O(√n)"},
	Linear: {Classical: "O(n^3)", Quantum: "O(log n)"},
	Path:   {Classical: "O(V + E)", Quantum: "O(V + E)"},
	Factor: {Classical: "O(√n)", Quantum: "O((log n)^3)"},
	Coin:   {Classical: "O(n)", Quantum: "O(n)"},
}

// TheoryFor returns the complexity pair for p; unknown kinds yield N/A.
func TheoryFor(p Problem) Theory {
	if t, ok := theories[p]; ok {
		return t
	}

	return Theory{Classical: NotAvailable, Quantum: NotAvailable}
}

// Compare builds the Comparison for a classical and a quantum Result.
// size is the problem-size parameter: sequence length, matrix order,
// vertex count, the integer factored or the number of tosses.
func Compare(problem Problem, classical, quantum machine.Result, size int) Comparison {
	c := Comparison{
		Problem:        problem,
		Size:           size,
		ClassicalSteps: classical.Steps,
		QuantumSteps:   quantum.Steps,
		ClassicalDone:  Finished(classical),
		QuantumDone:    Finished(quantum),
		SpeedupLabel:   NotAvailable,
		ErrorLabel:     NotAvailable,
		Theory:         TheoryFor(problem),
	}

	if s, ok := Speedup(classical.Steps, quantum.Steps); ok {
		c.Speedup, c.HasSpeedup = s, true
		c.SpeedupLabel = fmt.Sprintf("%.2f", s)
		c.QuantumWins = s > 1
	}
	if e, ok := RelativeError(classical.Solution, quantum.Solution); ok {
		c.RelativeError, c.HasError = e, true
		c.ErrorLabel = fmt.Sprintf("%.2f%%", e*100)
	}
	c.TheoreticalSpeedup = theoreticalSpeedup(problem, size)
	c.Narrative = narrate(c, classical, quantum)

	return c
}

// Finished reports whether r is a terminal Result rather than the zero
// value returned by an incomplete machine. Every machine labels its Result
// with a complexity, so a finished zero-step Result still counts.
func Finished(r machine.Result) bool { return r.Complexity != "" || r.Steps > 0 }

// Speedup returns classical/quantum; ok is false when either is zero.
func Speedup(classicalSteps, quantumSteps int) (float64, bool) {
	if classicalSteps <= 0 || quantumSteps <= 0 {
		return 0, false
	}

	return float64(classicalSteps) / float64(quantumSteps), true
}

// RelativeError returns ‖s1 − s2‖ / ‖s1‖ as a fraction.
// ok is false when either vector is empty, their lengths differ or ‖s1‖ ≈ 0.
func RelativeError(s1, s2 []float64) (float64, bool) {
	if len(s1) == 0 || len(s1) != len(s2) {
		return 0, false
	}
	var diff, norm float64
	for i := range s1 {
		d := s1[i] - s2[i]
		diff += d * d
		norm += s1[i] * s1[i]
	}
	if math.Sqrt(norm) < machine.Epsilon {
		return 0, false
	}

	return math.Sqrt(diff / norm), true
}

func theoreticalSpeedup(p Problem, size int) string {
	if size <= 0 {
		return NotAvailable
	}
	switch p {
	case Search:
		return fmt.Sprintf("%.2f", math.Sqrt(float64(size)))
	case Linear:
		return "O(n^3) vs O(log n)"
	case Factor:
		return "O(√n) vs O((log n)^3)"
	default:
		return NotAvailable
	}
}
