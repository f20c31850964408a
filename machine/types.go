// SPDX-License-Identifier: MIT

package machine

import (
	"errors"
	"fmt"
)

// Epsilon is the fixed tolerance used by every "is effectively zero" test.
const Epsilon = 1e-10

// ErrInvalidInput reports malformed construction input. No machine is built
// when it is returned.
var ErrInvalidInput = errors.New("machine: invalid input")

// InvalidInput derives a package sentinel that wraps ErrInvalidInput.
//
//	var ErrEmptySequence = machine.InvalidInput("search: empty sequence")
func InvalidInput(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidInput)
}

// Phase names a stage of a machine's forward-only lifecycle.
// Each machine family declares its own phase constants; Complete is shared.
type Phase string

// Complete is the terminal phase of every machine.
const Complete Phase = "complete"

// String implements fmt.Stringer.
func (p Phase) String() string { return string(p) }

// Machine is the stepwise contract consumed by the host (clock, runner,
// visualization adapter).
type Machine interface {
	// Name is the stable identifier of the machine variant (e.g. "grover-search").
	Name() string

	// Step advances exactly one unit of progress. No-op once complete.
	Step()

	// Reset returns the machine to its post-construction state.
	Reset()

	// Snapshot returns a deep-copied view of the current state.
	Snapshot() Snapshot

	// IsComplete reports whether the phase is Complete.
	IsComplete() bool

	// Result returns the terminal Result and true once complete.
	Result() (Result, bool)

	// Steps returns the ticks consumed since construction or the last Reset.
	Steps() int

	// Phase returns the current phase.
	Phase() Phase
}

// Result is the immutable terminal payload of a completed machine.
// Only the payload fields relevant to the machine family are populated.
type Result struct {
	// Solved is true when the target was found, the system solved,
	// a path discovered or the factorization finished.
	Solved bool `json:"solved"`

	// Steps is the family-specific step measure (checks, iterations,
	// ticks, exploration entries, layers).
	Steps int `json:"steps"`

	// Complexity is the asymptotic label shown next to the result.
	Complexity string `json:"complexity"`

	// Index is the found position for search machines, -1 when absent.
	Index int `json:"index"`

	// Solution is the solution vector of linear-system machines.
	Solution []float64 `json:"solution,omitempty"`

	// Factors is the ascending prime factorization.
	Factors []int `json:"factors,omitempty"`

	// Path is the node sequence from start to end for path machines.
	Path []string `json:"path,omitempty"`

	// Outcomes lists the coin-toss outcomes in toss order.
	Outcomes []string `json:"outcomes,omitempty"`

	// Reason explains an unsuccessful result (e.g. "singular matrix").
	Reason string `json:"reason,omitempty"`
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	out := r
	if r.Solution != nil {
		out.Solution = append([]float64(nil), r.Solution...)
	}
	if r.Factors != nil {
		out.Factors = append([]int(nil), r.Factors...)
	}
	if r.Path != nil {
		out.Path = append([]string(nil), r.Path...)
	}
	if r.Outcomes != nil {
		out.Outcomes = append([]string(nil), r.Outcomes...)
	}

	return out
}

// Register is an ordered sequence of cells owned by a machine.
// Numeric cells live in Values, symbolic cells in Labels; a register may
// carry both (e.g. a qubit register with a symbol and a probability per cell).
type Register struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values,omitempty"`
	Labels []string  `json:"labels,omitempty"`
}

// NumericRegister copies values into a new Register.
func NumericRegister(name string, values []float64) Register {
	return Register{Name: name, Values: append([]float64(nil), values...)}
}

// LabelRegister copies labels into a new Register.
func LabelRegister(name string, labels []string) Register {
	return Register{Name: name, Labels: append([]string(nil), labels...)}
}

// IntRegister converts ints into a numeric Register.
func IntRegister(name string, values []int) Register {
	if values == nil {
		return Register{Name: name}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return Register{Name: name, Values: out}
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	Machine   string     `json:"machine"`
	Phase     Phase      `json:"phase"`
	Steps     int        `json:"steps"`
	Message   string     `json:"message"`
	Complete  bool       `json:"complete"`
	Registers []Register `json:"registers,omitempty"`
}

// Register returns the register with the given name.
func (s Snapshot) Register(name string) (Register, bool) {
	for _, r := range s.Registers {
		if r.Name == name {
			return r, true
		}
	}

	return Register{}, false
}
