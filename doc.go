// SPDX-License-Identifier: MIT

// Package qstep is a set of stepwise algorithm machines that run a classical
// algorithm and a quantum-inspired counterpart side by side, one tick at a
// time, with an inspectable snapshot after every tick.
//
// Machines (all implement machine.Machine):
//
//	search/  : Linear (scan) vs Grover (amplitude amplification stand-in)
//	linsys/  : Gauss (elimination, back substitution) vs HHL (nine-tick schedule)
//	dfs/     : PathMachine, depth-first search with an explicit backtracking log
//	bfs/     : LayeredMachine, layers revealed one per tick, shortest path
//	factor/  : Trial (trial division) vs Shor (period-finding stage plan)
//	coin/    : Classical (Heads/Tails) vs Quantum (init → H → superposition → measure)
//
// Supporting packages:
//
//	machine/  : the Machine contract, Phase, Result, Snapshot, Register, Base
//	core/     : insertion-ordered in-memory Graph used by dfs and bfs
//	matrix/   : Dense matrices, row operations, validators, Jacobi eigenvalues
//	compare/  : speedup, relative error and narrative for a finished pair
//	clock/    : tick sources (Immediate, Manual, Paced) and Drive
//	observe/  : run events to slog, metrics and in-memory recorders
//	metrics/  : Prometheus counters and histogram for runs
//	scenario/ : YAML scenario files and machine-pair construction
//	config/   : defaults, YAML file and QSTEP_* environment overrides
//	runner/   : drives a scenario, records the trace, builds the report
//	cmd/qstep : the run, trace and validate commands
//
// Quick start:
//
//	lin, _ := search.NewLinear([]string{"101", "99", "42"}, "42")
//	grov, _ := search.NewGrover([]string{"101", "99", "42"}, "42")
//	_, _ = clock.Drive(ctx, clock.Immediate{}, 0, lin, grov)
//	a, _ := lin.Result()
//	b, _ := grov.Result()
//	fmt.Println(compare.Compare(compare.Search, a, b, 3).Narrative)
//
// Machines are single-owner and unsynchronized. Reset re-derives the state
// from the input copied at construction, so the same ticks give the same
// Result.
package qstep
