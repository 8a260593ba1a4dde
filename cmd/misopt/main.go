// SPDX-License-Identifier: MIT

// Command misopt searches for large independent sets.
//
//	misopt solve    -i graph.txt --algo hybrid -t 30s
//	misopt race     -i graph.txt -t 60s -s 5s -o race.csv --db runs.sqlite
//	misopt generate -n 1000 -p 0.05 --seed 3 -o graph.txt
//	misopt verify   -i graph.txt --solution best.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "misopt:", err)
		os.Exit(1)
	}
}
