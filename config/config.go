// SPDX-License-Identifier: MIT

// Package config loads runtime settings: built-in defaults, then an optional
// YAML file, then QSTEP_* environment variables (QSTEP_CLOCK_MODE, ...).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "QSTEP"

// Config holds runtime settings.
type Config struct {
	Clock   ClockConfig   `mapstructure:"clock"`
	Run     RunConfig     `mapstructure:"run"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ClockConfig selects the tick source.
type ClockConfig struct {
	Mode     string        `mapstructure:"mode" validate:"oneof=immediate paced"`
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

// RunConfig bounds a run.
type RunConfig struct {
	MaxTicks    int  `mapstructure:"max_ticks" validate:"gte=0"`
	RecordTrace bool `mapstructure:"record_trace"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig enables the /metrics listener when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

// Defaults.
const (
	DefaultClockMode     = "immediate"
	DefaultClockInterval = 250 * time.Millisecond
	DefaultMaxTicks      = 10000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid")

// New returns a viper instance carrying the defaults and env bindings.
// Callers such as the CLI may bind flags onto it before calling Decode.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("clock.mode", DefaultClockMode)
	v.SetDefault("clock.interval", DefaultClockInterval)
	v.SetDefault("run.max_ticks", DefaultMaxTicks)
	v.SetDefault("run.record_trace", true)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("metrics.addr", "")

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads defaults, the file at path (skipped when empty) and env.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return Decode(v)
}

// Decode unmarshals v and validates the result.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

var validate = validator.New()

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// SlogLevel parses Log.Level.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return l
}
