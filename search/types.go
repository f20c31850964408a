// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/katalvlaran/qstep/machine"
)

// ErrEmptySequence is returned when the value sequence is empty.
var ErrEmptySequence = machine.InvalidInput("search: empty sequence")

// Phases shared by both search machines.
const (
	PhaseRunning machine.Phase = "running"
)

// Machine names.
const (
	NameLinear = "linear-search"
	NameGrover = "grover-search"
)

// Complexity labels.
const (
	ComplexityLinear = "O(n)"
	ComplexityGrover = "O(√n)"
)

// Register names exposed in snapshots.
const (
	RegValues        = "values"
	RegChecked       = "checked"
	RegAmplitudes    = "amplitudes"
	RegProbabilities = "probabilities"
)

// labels renders values for a label register.
func labels[T comparable](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}

	return out
}

// indexOf returns the first index of target, or -1.
func indexOf[T comparable](values []T, target T) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}

	return -1
}
