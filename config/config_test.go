// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qstep/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "immediate", c.Clock.Mode)
	assert.Equal(t, 250*time.Millisecond, c.Clock.Interval)
	assert.Equal(t, 10000, c.Run.MaxTicks)
	assert.True(t, c.Run.RecordTrace)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Empty(t, c.Metrics.Addr)
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qstep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"clock:\n  mode: paced\n  interval: 50ms\nlog:\n  level: debug\nmetrics:\n  addr: localhost:9090\n"), 0o600))
	t.Setenv("QSTEP_RUN_MAX_TICKS", "42")
	t.Setenv("QSTEP_LOG_FORMAT", "json")

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paced", c.Clock.Mode)
	assert.Equal(t, 50*time.Millisecond, c.Clock.Interval)
	assert.Equal(t, 42, c.Run.MaxTicks)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "localhost:9090", c.Metrics.Addr)
	assert.Equal(t, slog.LevelDebug, c.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("QSTEP_CLOCK_MODE", "sundial")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
