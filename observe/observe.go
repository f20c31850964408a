// SPDX-License-Identifier: MIT

// Package observe carries run events from the runner to logging, metrics
// and test sinks. Machines never emit events themselves.
package observe

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Level is event severity.
type Level int

// Severity levels, numbered like OTel SeverityNumber ranges.
const (
	LevelDebug Level = 5
	LevelInfo  Level = 9
	LevelWarn  Level = 13
	LevelError Level = 17
)

// SlogLevel maps l onto slog.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= LevelDebug+3:
		return slog.LevelDebug
	case l <= LevelInfo+3:
		return slog.LevelInfo
	case l <= LevelWarn+3:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event.
type EventType string

// Runner events.
const (
	RunStart        EventType = "run.start"
	MachineStep     EventType = "machine.step"
	MachineComplete EventType = "machine.complete"
	RunComplete     EventType = "run.complete"
)

// Common Data keys.
const (
	KeyRunID    = "run_id"
	KeyScenario = "scenario"
	KeyMachine  = "machine"
	KeyPhase    = "phase"
	KeySteps    = "steps"
	KeyMessage  = "message"
	KeySolved   = "solved"
	KeyTicks    = "ticks"
	KeySpeedup  = "speedup"
)

// Event is one observation.
type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// SlogObserver writes events to a slog.Logger; the event type is the message
// and Data entries become attributes.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver wraps logger; a nil logger means slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogObserver{logger: logger}
}

// OnEvent logs event at its mapped slog level with Data as attributes.
func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+1)
	attrs = append(attrs, slog.String("source", event.Source))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}
	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}

// Noop discards events.
type Noop struct{}

// OnEvent discards event.
func (Noop) OnEvent(context.Context, Event) {}

// Multi fans events out in order.
type Multi struct {
	observers []Observer
}

// NewMulti keeps the non-nil observers.
func NewMulti(observers ...Observer) *Multi {
	kept := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			kept = append(kept, o)
		}
	}

	return &Multi{observers: kept}
}

// OnEvent forwards event to each observer in order.
func (m *Multi) OnEvent(ctx context.Context, event Event) {
	for _, o := range m.observers {
		o.OnEvent(ctx, event)
	}
}

// Recorder keeps every event in memory. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// OnEvent appends event to the log.
func (r *Recorder) OnEvent(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of what was recorded.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}

	return n
}
