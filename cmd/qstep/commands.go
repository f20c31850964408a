// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qstep/runner"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run scenario.yaml...",
		Short: "Drive each scenario to completion and print the comparison",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := a.loadAll(args)
			if err != nil {
				return err
			}
			opts, stop := a.options(false)
			defer stop()

			reports, err := runner.RunAll(cmd.Context(), scenarios, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.format == "json" {
				return runner.FormatJSON(out, reports...)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := runner.FormatReport(out, r); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace scenario.yaml",
		Short: "Print one line per machine per tick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := a.loadAll(args)
			if err != nil {
				return err
			}
			opts, stop := a.options(true)
			defer stop()

			rep, err := runner.Run(cmd.Context(), scenarios[0], opts)
			if err != nil {
				return err
			}
			if a.format == "json" {
				return runner.FormatJSON(cmd.OutOrStdout(), rep)
			}

			return runner.FormatTrace(cmd.OutOrStdout(), rep.Trace)
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate scenario.yaml...",
		Short: "Parse scenarios and build their machines without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := a.loadAll(args)
			if err != nil {
				return err
			}
			for i, s := range scenarios {
				p, err := s.Build()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %s vs %s, size %d)\n",
					args[i], s.Problem, p.Classical.Name(), p.Quantum.Name(), p.Size)
			}

			return nil
		},
	}
}
