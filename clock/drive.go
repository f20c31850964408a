// SPDX-License-Identifier: MIT

package clock

import (
	"context"
	"errors"

	"github.com/katalvlaran/qstep/machine"
)

// ErrTickLimit reports that Drive stopped at its period limit with at least
// one machine still incomplete.
var ErrTickLimit = errors.New("clock: tick limit reached")

// Hook observes one machine right after it was stepped in period p (1-based).
type Hook func(p int, m machine.Machine)

// Drive runs machines under clk. See DriveWithHook.
func Drive(ctx context.Context, clk Clock, maxTicks int, machines ...machine.Machine) (int, error) {
	return DriveWithHook(ctx, clk, maxTicks, nil, machines...)
}

// DriveWithHook ticks each incomplete machine once per period and calls hook
// after every Step. maxTicks <= 0 means no limit. It returns the number of
// periods run.
//
// Errors:
//   - ErrTickLimit: periods reached maxTicks before all machines completed.
//   - ctx.Err() (or the clock's error) when waiting was interrupted.
func DriveWithHook(ctx context.Context, clk Clock, maxTicks int, hook Hook, machines ...machine.Machine) (int, error) {
	var periods int
	for {
		if allComplete(machines) {
			return periods, nil
		}
		if maxTicks > 0 && periods >= maxTicks {
			return periods, ErrTickLimit
		}
		if err := ctx.Err(); err != nil {
			return periods, err
		}
		if err := clk.Wait(ctx); err != nil {
			return periods, err
		}
		periods++
		for _, m := range machines {
			if m.IsComplete() {
				continue
			}
			m.Step()
			if hook != nil {
				hook(periods, m)
			}
		}
	}
}

func allComplete(machines []machine.Machine) bool {
	for _, m := range machines {
		if !m.IsComplete() {
			return false
		}
	}

	return true
}
