// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qstep/clock"
	"github.com/katalvlaran/qstep/config"
	"github.com/katalvlaran/qstep/metrics"
	"github.com/katalvlaran/qstep/observe"
	"github.com/katalvlaran/qstep/runner"
	"github.com/katalvlaran/qstep/scenario"
)

// app is the state shared by subcommands after flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfgFile string
	format  string
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:          "qstep",
		Short:        "Step classical and quantum-inspired algorithms side by side",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.StringVar(&a.format, "format", "text", "output format: text or json")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")
	pf.String("clock", config.DefaultClockMode, "clock mode: immediate or paced")
	pf.Duration("interval", config.DefaultClockInterval, "period of the paced clock")
	pf.Int("max-ticks", config.DefaultMaxTicks, "stop after this many periods (0 = no limit)")
	pf.String("metrics-addr", "", "serve Prometheus /metrics on this address while running")

	for key, flag := range map[string]string{
		"log.level":      "log-level",
		"log.format":     "log-format",
		"clock.mode":     "clock",
		"clock.interval": "interval",
		"run.max_ticks":  "max-ticks",
		"metrics.addr":   "metrics-addr",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newRunCmd(a), newTraceCmd(a), newValidateCmd(a))

	return root
}

func (a *app) init(stderr io.Writer) error {
	if a.format != "text" && a.format != "json" {
		return fmt.Errorf("unsupported --format %q", a.format)
	}
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler = slog.NewTextHandler(stderr, opts)
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(stderr, opts)
	}
	a.logger = slog.New(h)

	return nil
}

func (a *app) loadAll(paths []string) ([]*scenario.Scenario, error) {
	out := make([]*scenario.Scenario, 0, len(paths))
	var errs []error
	for _, p := range paths {
		s, err := scenario.Load(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, s)
	}

	return out, errors.Join(errs...)
}

// options builds runner options and, when metrics.addr is set, starts the
// /metrics listener. The returned stop func shuts it down.
func (a *app) options(trace bool) (runner.Options, func()) {
	observers := []observe.Observer{observe.NewSlogObserver(a.logger)}
	stop := func() {}

	if a.cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		observers = append(observers, metrics.NewRecorder(reg))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: a.cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics listener", "addr", srv.Addr, "err", err)
			}
		}()
		a.logger.Info("metrics listening", "addr", srv.Addr)
		stop = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}
	}

	return runner.Options{
		Mode:        clock.Mode(a.cfg.Clock.Mode),
		Interval:    a.cfg.Clock.Interval,
		MaxTicks:    a.cfg.Run.MaxTicks,
		RecordTrace: trace || a.cfg.Run.RecordTrace,
		Observer:    observe.NewMulti(observers...),
	}, stop
}
