// SPDX-License-Identifier: MIT

// Package runner drives a scenario's machine pair under a clock, records a
// per-tick trace, emits observer events and aggregates the two Results.
//
//	s, _ := scenario.Load("scenarios/search.yaml")
//	rep, err := runner.Run(ctx, s, runner.Options{})
//	_ = runner.FormatReport(os.Stdout, rep)
//
// RunAll runs independent scenarios concurrently with errgroup; each run owns
// its machines and, unless Options.Clock is set, its own clock.
package runner
