// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/graphio"
	"github.com/katalvlaran/misopt/greedy"
)

type solveFlags struct {
	input       string
	algo        string
	timeLimit   time.Duration
	generations int
	seed        uint64
	workers     int
	rcl         int
	solutionOut string
}

func (a *app) solveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search one instance and print \"<fitness> <elapsed seconds>\"",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "instance file (required)")
	fl.StringVar(&f.algo, "algo", "hybrid", "brkga|hybrid|sa|greedy|greedy-rand")
	fl.DurationVarP(&f.timeLimit, "time", "t", 0, "time budget, overrides the config")
	fl.IntVar(&f.generations, "generations", 0, "stop BRKGA after N generations instead of on time, overrides the config")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed, overrides the config")
	fl.IntVar(&f.workers, "workers", 0, "BRKGA decode goroutines, overrides the config")
	fl.IntVar(&f.rcl, "rcl", 3, "restricted candidate list size for greedy-rand")
	fl.StringVar(&f.solutionOut, "solution-out", "", "write the best set here, one vertex per line")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, f solveFlags) error {
	cfg, log, err := a.setup()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("time") {
		cfg.TimeLimit = f.timeLimit
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("generations") {
		cfg.Generations = f.generations
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	g, err := a.readGraph(log, f.input)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var (
		set     []int
		elapsed time.Duration
	)
	switch f.algo {
	case "brkga", "hybrid":
		o := cfg.BRKGAOptions(f.algo == "hybrid")
		o.Logger = log
		o.OnImprove = func(ev brkga.Improvement) {
			log.Info("improved", slog.Int("fitness", ev.Fitness), slog.Int("generation", ev.Generation),
				slog.String("source", string(ev.Source)), slog.Duration("elapsed", ev.Elapsed))
		}
		eng, err := brkga.New(g, o)
		if err != nil {
			return err
		}
		res, err := eng.Run(ctx)
		if err != nil {
			return err
		}
		set, elapsed = res.Solution, res.Elapsed
		log.Info("brkga finished", slog.String("reason", res.StopReason.String()),
			slog.Int("generations", res.Generations), slog.Duration("found_at", res.FoundAt),
			slog.Int("intensify_cycles", res.Intensify.Cycles), slog.Int("intensify_failures", res.Intensify.Failures))

	case "sa":
		o := cfg.AnnealOptions()
		o.Logger = log
		o.OnImprove = func(ev anneal.Improvement) {
			log.Info("improved", slog.Int("fitness", ev.Fitness), slog.Int64("iteration", ev.Iteration),
				slog.Duration("elapsed", ev.Elapsed))
		}
		an, err := anneal.New(g, o)
		if err != nil {
			return err
		}
		res, err := an.Run(ctx)
		if err != nil {
			return err
		}
		set, elapsed = res.Solution, res.Elapsed

	case "greedy":
		start := time.Now()
		set = greedy.Deterministic(g)
		elapsed = time.Since(start)

	case "greedy-rand":
		start := time.Now()
		set, err = greedy.Randomized(g, f.rcl, rand.New(rand.NewSource(int64(cfg.Seed))))
		if err != nil {
			return err
		}
		elapsed = time.Since(start)

	default:
		return fmt.Errorf("solve: %q: %w", f.algo, errUnknownAlgo)
	}

	if err = g.CheckIndependent(set); err != nil {
		return fmt.Errorf("solve: %s produced an invalid set: %w", f.algo, err)
	}
	fmt.Fprintf(a.out, "%d %.3f\n", len(set), elapsed.Seconds())

	if f.solutionOut != "" {
		return writeFile(f.solutionOut, func(w io.Writer) error {
			return graphio.WriteSolution(w, set, a.base())
		})
	}
	return nil
}
