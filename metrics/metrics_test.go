// SPDX-License-Identifier: MIT

package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/metrics"
	"github.com/katalvlaran/qstep/observe"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec.OnEvent(ctx, observe.Event{Type: observe.MachineStep, Data: map[string]any{observe.KeyMachine: "hhl"}})
	}
	rec.OnEvent(ctx, observe.Event{Type: observe.MachineComplete, Data: map[string]any{
		observe.KeyMachine: "hhl", observe.KeySolved: true, observe.KeySteps: 9,
	}})
	rec.OnEvent(ctx, observe.Event{Type: observe.RunComplete, Data: map[string]any{observe.KeyScenario: "linear-demo"}})
	rec.OnEvent(ctx, observe.Event{Type: observe.RunStart})

	assert.Equal(t, 3.0, testutil.ToFloat64(rec.Ticks("hhl")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Completed("hhl", true)))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Completed("hhl", false)))

	n, err := testutil.GatherAndCount(reg, "qstep_result_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = testutil.GatherAndCount(reg, "qstep_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
