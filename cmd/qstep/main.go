// SPDX-License-Identifier: MIT

// Command qstep drives classical and quantum-inspired machine pairs from
// scenario files.
//
//	qstep run scenarios/search.yaml scenarios/linear.yaml
//	qstep run --clock paced --interval 200ms scenarios/path.yaml
//	qstep trace scenarios/factor.yaml
//	qstep validate scenarios/*.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
