// SPDX-License-Identifier: MIT

package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// ErrInterval is returned by NewPaced for a non-positive interval.
var ErrInterval = errors.New("clock: interval must be positive")

// Mode names a clock kind in configuration.
type Mode string

// Supported modes.
const (
	ModeImmediate Mode = "immediate"
	ModePaced     Mode = "paced"
	ModeManual    Mode = "manual"
)

// Clock gates the start of each period.
type Clock interface {
	// Wait blocks until the next period may begin or ctx is done.
	Wait(ctx context.Context) error
}

// Immediate never blocks.
type Immediate struct{}

// Wait returns ctx.Err() without waiting.
func (Immediate) Wait(ctx context.Context) error { return ctx.Err() }

// Manual releases one period per Tick call.
type Manual struct {
	ticks chan struct{}
}

// NewManual returns a Manual clock with no pending ticks.
func NewManual() *Manual { return &Manual{ticks: make(chan struct{})} }

// Tick releases one waiting period, blocking until Wait consumes it or ctx
// is done.
func (m *Manual) Tick(ctx context.Context) error {
	select {
	case m.ticks <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until Tick or ctx is done.
func (m *Manual) Wait(ctx context.Context) error {
	select {
	case <-m.ticks:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Paced allows one period per interval. The first period starts at once.
type Paced struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewPaced returns a Paced clock.
//
// Errors: ErrInterval.
func NewPaced(interval time.Duration) (*Paced, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInterval, interval)
	}

	return &Paced{interval: interval, limiter: rate.NewLimiter(rate.Every(interval), 1)}, nil
}

// Interval returns the configured period.
func (p *Paced) Interval() time.Duration { return p.interval }

// Wait blocks on the limiter.
func (p *Paced) Wait(ctx context.Context) error { return p.limiter.Wait(ctx) }

// New builds a clock for mode. Manual clocks are built with NewManual since
// the caller must keep the handle to tick it.
func New(mode Mode, interval time.Duration) (Clock, error) {
	switch mode {
	case ModeImmediate, "":
		return Immediate{}, nil
	case ModePaced:
		p, err := NewPaced(interval)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("clock: unsupported mode %q", mode)
	}
}
