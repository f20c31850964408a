// SPDX-License-Identifier: MIT

package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/qstep/machine"
)

// FormatTrace writes one fixed-width line per trace entry.
func FormatTrace(w io.Writer, trace []TraceLine) error {
	for _, l := range trace {
		if _, err := fmt.Fprintf(w, "%3d %-20s %-11s %4d  %s\n", l.Period, l.Machine, l.Phase, l.Steps, l.Message); err != nil {
			return err
		}
	}

	return nil
}

// FormatReport writes the human-readable summary of rep.
func FormatReport(w io.Writer, rep *Report) error {
	c := rep.Comparison
	ew := &errWriter{w: w}
	ew.printf("scenario: %s (%s, size %d)\n", rep.Scenario, rep.Problem, c.Size)
	ew.printf("periods:  %d", rep.Periods)
	if rep.Truncated {
		ew.printf(" (tick limit reached)")
	}
	ew.printf("\n")
	ew.result(rep.ClassicalName, rep.Classical)
	ew.result(rep.QuantumName, rep.Quantum)
	ew.printf("speedup:  %s (theoretical %s)\n", c.SpeedupLabel, c.TheoreticalSpeedup)
	ew.printf("error:    %s\n", c.ErrorLabel)
	ew.printf("%s\n", c.Narrative)

	return ew.err
}

// FormatJSON writes rep as indented JSON.
func FormatJSON(w io.Writer, reps ...*Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reps) == 1 {
		return enc.Encode(reps[0])
	}

	return enc.Encode(reps)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) result(name string, r machine.Result) {
	e.printf("  %-20s solved=%-5t steps=%-4d %s", name, r.Solved, r.Steps, r.Complexity)
	switch {
	case len(r.Solution) > 0:
		e.printf(" x=%.4g", r.Solution)
	case len(r.Factors) > 0:
		e.printf(" factors=%v", r.Factors)
	case len(r.Path) > 0:
		e.printf(" path=%v", r.Path)
	case r.Index >= 0 && len(r.Outcomes) == 0:
		e.printf(" index=%d", r.Index)
	}
	if r.Reason != "" {
		e.printf(" (%s)", r.Reason)
	}
	e.printf("\n")
}
