// SPDX-License-Identifier: MIT

// Package metrics exports run activity as Prometheus series. A Recorder is an
// observe.Observer, so it plugs into the runner next to the slog observer.
package metrics

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/qstep/observe"
)

const namespace = "qstep"

// Recorder owns the qstep series registered on one registry.
type Recorder struct {
	ticks       *prometheus.CounterVec
	completed   *prometheus.CounterVec
	resultSteps *prometheus.HistogramVec
	runs        *prometheus.CounterVec
}

// NewRecorder registers the series on reg. Registering twice on the same
// registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		ticks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Steps applied to machines",
		}, []string{"machine"}),
		completed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completed_total",
			Help:      "Machines that reached the complete phase",
		}, []string{"machine", "solved"}),
		resultSteps: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "result_steps",
			Help:      "Steps reported in terminal results",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"machine"}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed scenario runs",
		}, []string{"scenario"}),
	}
}

// OnEvent updates the series for runner events; other events are ignored.
func (r *Recorder) OnEvent(_ context.Context, e observe.Event) {
	name, _ := e.Data[observe.KeyMachine].(string)
	switch e.Type {
	case observe.MachineStep:
		r.ticks.WithLabelValues(name).Inc()
	case observe.MachineComplete:
		solved, _ := e.Data[observe.KeySolved].(bool)
		r.completed.WithLabelValues(name, strconv.FormatBool(solved)).Inc()
		if steps, ok := e.Data[observe.KeySteps].(int); ok {
			r.resultSteps.WithLabelValues(name).Observe(float64(steps))
		}
	case observe.RunComplete:
		scenario, _ := e.Data[observe.KeyScenario].(string)
		r.runs.WithLabelValues(scenario).Inc()
	}
}

// Ticks returns the tick counter for a machine name.
func (r *Recorder) Ticks(name string) prometheus.Counter { return r.ticks.WithLabelValues(name) }

// Completed returns the completion counter for a machine name and outcome.
func (r *Recorder) Completed(name string, solved bool) prometheus.Counter {
	return r.completed.WithLabelValues(name, strconv.FormatBool(solved))
}

var _ observe.Observer = (*Recorder)(nil)
