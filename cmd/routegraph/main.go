// SPDX-License-Identifier: MIT
//
// Command routegraph answers route queries over a directed weighted graph
// of single-character towns.
//
//	routegraph --data "AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7" distance A-B-C A-E-D
//	routegraph --file town.txt count C C --max-stops 3
//	routegraph --file town.txt shortest B B
//	routegraph --file town.txt reach A --max-stops 2
//	routegraph run plan.yaml
//	routegraph gen m --seed 7 > graph-m.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals cancel the running command.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
