// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qstep/clock"
	"github.com/katalvlaran/qstep/compare"
	"github.com/katalvlaran/qstep/machine"
	"github.com/katalvlaran/qstep/observe"
	"github.com/katalvlaran/qstep/scenario"
)

const source = "runner"

// Options configures a run. The zero value runs flat out with no limit,
// no trace and no observer.
type Options struct {
	// Clock is shared by every run when set; otherwise one is built per run
	// from Mode and Interval.
	Clock    clock.Clock
	Mode     clock.Mode
	Interval time.Duration

	MaxTicks    int
	RecordTrace bool
	Observer    observe.Observer

	// Concurrency bounds RunAll; <= 0 means one goroutine per scenario.
	Concurrency int
}

// TraceLine is one machine state right after a Step.
type TraceLine struct {
	Period  int           `json:"period"`
	Machine string        `json:"machine"`
	Phase   machine.Phase `json:"phase"`
	Steps   int           `json:"steps"`
	Message string        `json:"message"`
}

// Report is the outcome of one scenario run.
type Report struct {
	RunID    string          `json:"run_id"`
	Scenario string          `json:"scenario"`
	Problem  compare.Problem `json:"problem"`
	Periods  int             `json:"periods"`
	// Truncated is set when the tick limit stopped the run early.
	Truncated bool `json:"truncated"`

	ClassicalName string             `json:"classical_name"`
	QuantumName   string             `json:"quantum_name"`
	Classical     machine.Result     `json:"classical"`
	Quantum       machine.Result     `json:"quantum"`
	Comparison    compare.Comparison `json:"comparison"`
	Trace         []TraceLine        `json:"trace,omitempty"`
}

// Run builds the scenario's pair and drives it to completion.
func Run(ctx context.Context, s *scenario.Scenario, opts Options) (*Report, error) {
	pair, err := s.Build()
	if err != nil {
		return nil, err
	}

	return RunPair(ctx, s.Name, pair, opts)
}

// RunPair drives an already built pair.
func RunPair(ctx context.Context, name string, pair scenario.Pair, opts Options) (*Report, error) {
	clk := opts.Clock
	if clk == nil {
		var err error
		if clk, err = clock.New(opts.Mode, opts.Interval); err != nil {
			return nil, err
		}
	}
	obs := opts.Observer
	if obs == nil {
		obs = observe.Noop{}
	}

	rep := &Report{
		RunID:         uuid.NewString(),
		Scenario:      name,
		Problem:       pair.Problem,
		ClassicalName: pair.Classical.Name(),
		QuantumName:   pair.Quantum.Name(),
	}
	emit := func(t observe.EventType, lvl observe.Level, data map[string]any) {
		data[observe.KeyRunID] = rep.RunID
		data[observe.KeyScenario] = name
		obs.OnEvent(ctx, observe.Event{Type: t, Level: lvl, Timestamp: time.Now(), Source: source, Data: data})
	}

	emit(observe.RunStart, observe.LevelInfo, map[string]any{
		"problem":   string(pair.Problem),
		"classical": rep.ClassicalName,
		"quantum":   rep.QuantumName,
		"size":      pair.Size,
	})

	hook := func(p int, m machine.Machine) {
		if opts.RecordTrace {
			rep.Trace = append(rep.Trace, TraceLine{
				Period: p, Machine: m.Name(), Phase: m.Phase(), Steps: m.Steps(), Message: m.Snapshot().Message,
			})
		}
		emit(observe.MachineStep, observe.LevelDebug, map[string]any{
			observe.KeyMachine: m.Name(),
			observe.KeyPhase:   string(m.Phase()),
			observe.KeySteps:   m.Steps(),
		})
		if res, ok := m.Result(); ok {
			emit(observe.MachineComplete, observe.LevelInfo, map[string]any{
				observe.KeyMachine: m.Name(),
				observe.KeySolved:  res.Solved,
				observe.KeySteps:   res.Steps,
				observe.KeyMessage: m.Snapshot().Message,
			})
		}
	}

	periods, err := clock.DriveWithHook(ctx, clk, opts.MaxTicks, hook, pair.Machines()...)
	rep.Periods = periods
	switch {
	case errors.Is(err, clock.ErrTickLimit):
		rep.Truncated = true
	case err != nil:
		return nil, fmt.Errorf("runner: %s: %w", name, err)
	}

	rep.Classical, _ = pair.Classical.Result()
	rep.Quantum, _ = pair.Quantum.Result()
	rep.Comparison = compare.Compare(pair.Problem, rep.Classical, rep.Quantum, pair.Size)

	emit(observe.RunComplete, observe.LevelInfo, map[string]any{
		observe.KeyTicks:   periods,
		observe.KeySpeedup: rep.Comparison.SpeedupLabel,
		"truncated":        rep.Truncated,
	})

	return rep, nil
}

// RunAll runs scenarios concurrently. Reports keep the input order. The first
// error cancels the remaining runs and is returned.
func RunAll(ctx context.Context, scenarios []*scenario.Scenario, opts Options) ([]*Report, error) {
	reports := make([]*Report, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, s := range scenarios {
		g.Go(func() error {
			rep, err := Run(gctx, s, opts)
			if err != nil {
				return err
			}
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
