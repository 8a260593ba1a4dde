// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/misopt/race"
)

type raceFlags struct {
	input          string
	timeLimit      time.Duration
	sampleInterval time.Duration
	csvOut         string
	dbPath         string
	metricsAddr    string
	noHybrid       bool
	greedy         bool
}

func (a *app) raceCmd() *cobra.Command {
	var f raceFlags
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Run SA, BRKGA and hybrid BRKGA side by side and sample their best fitness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.race(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "instance file (required)")
	fl.DurationVarP(&f.timeLimit, "time", "t", 0, "race budget, overrides the config")
	fl.DurationVarP(&f.sampleInterval, "sample", "s", 0, "sampling period, overrides the config")
	fl.StringVarP(&f.csvOut, "output", "o", "", "write samples as CSV")
	fl.StringVar(&f.dbPath, "db", "", "append samples to this SQLite database")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the race")
	fl.BoolVar(&f.noHybrid, "no-hybrid", false, "leave the hybrid BRKGA out")
	fl.BoolVar(&f.greedy, "greedy", false, "add the static-degree greedy as a baseline")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) race(cmd *cobra.Command, f raceFlags) error {
	cfg, log, err := a.setup()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("time") {
		cfg.TimeLimit = f.timeLimit
	}
	if cmd.Flags().Changed("sample") {
		cfg.Race.SampleInterval = f.sampleInterval
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	g, err := a.readGraph(log, f.input)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	opts := cfg.RaceOptions()
	opts.Logger = log

	var sinks race.MultiSink
	if f.csvOut != "" {
		file, err := os.Create(f.csvOut)
		if err != nil {
			return err
		}
		defer file.Close()
		sinks = append(sinks, race.NewCSVSink(file))
	}
	if f.dbPath != "" {
		db, err := race.OpenSQLite(ctx, f.dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		sinks = append(sinks, db)
	}
	if len(sinks) > 0 {
		opts.Sink = sinks
	}

	reg := prometheus.NewRegistry()
	opts.Metrics = race.NewMetrics(reg)
	if f.metricsAddr != "" {
		stop := serveMetrics(log, f.metricsAddr, reg)
		defer stop()
	}

	runner, err := race.New(opts)
	if err != nil {
		return err
	}

	// every optimizer gets the whole race budget; the race cancels them
	ga := cfg.BRKGAOptions(false)
	ga.Logger = log.With(slog.String("worker", "brkga"))
	workers := []race.Worker{
		race.Anneal("sa", g, cfg.AnnealOptions()),
		race.BRKGA("brkga", g, ga),
	}
	if !f.noHybrid {
		hy := cfg.BRKGAOptions(true)
		hy.Logger = log.With(slog.String("worker", "hybrid"))
		workers = append(workers, race.BRKGA("hybrid", g, hy))
	}
	if f.greedy {
		workers = append(workers, race.Greedy("greedy", g))
	}

	st, err := runner.Run(ctx, workers...)
	for _, w := range workers {
		name := w.Name()
		if werr, ok := st.Errors[name]; ok {
			fmt.Fprintf(a.out, "%s\terror: %v\n", name, werr)
			continue
		}
		if fit, ok := st.Final[name]; ok {
			fmt.Fprintf(a.out, "%s\t%d\n", name, fit)
		} else {
			fmt.Fprintf(a.out, "%s\t-\n", name)
		}
	}
	fmt.Fprintf(a.out, "winners\t%v\nrun\t%s\n", st.Winners, st.RunID)

	return err
}

// serveMetrics exposes reg on addr until the returned func is called.
func serveMetrics(log *slog.Logger, addr string, reg *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", slog.String("addr", addr), slog.Any("error", err))
		}
	}()
	log.Info("serving metrics", slog.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
