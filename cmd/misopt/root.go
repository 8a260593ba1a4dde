// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/misopt/config"
	"github.com/katalvlaran/misopt/core"
	"github.com/katalvlaran/misopt/graphio"
	"github.com/katalvlaran/misopt/internal/logging"
)

var (
	errUnknownAlgo   = errors.New("unknown algorithm")
	errUnknownFormat = errors.New("unknown log format")
)

// app holds the persistent flags shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string
	zeroBased  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:           "misopt",
		Short:         "Maximum independent set search: BRKGA, hybrid BRKGA, simulated annealing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (MISOPT_* env vars override it)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error, overrides the config")
	pf.StringVar(&a.logFormat, "log-format", "", "text|json, overrides the config")
	pf.BoolVar(&a.zeroBased, "zero-based", false, "vertex ids in files start at 0 instead of 1")

	root.AddCommand(a.solveCmd(), a.raceCmd(), a.generateCmd(), a.verifyCmd())

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return cfg, nil, err
	}
	format := logging.Format(cfg.Log.Format)
	if format != logging.FormatText && format != logging.FormatJSON {
		return cfg, nil, fmt.Errorf("%q: %w", cfg.Log.Format, errUnknownFormat)
	}

	return cfg, logging.New(logging.Config{Level: level, Format: format, Writer: a.errOut}), nil
}

func (a *app) base() graphio.Base {
	if a.zeroBased {
		return graphio.ZeroBased
	}
	return graphio.OneBased
}

func (a *app) readGraph(log *slog.Logger, path string) (*core.Graph, error) {
	g, err := graphio.ReadFile(path, a.base())
	if err != nil {
		return nil, err
	}
	log.Info("instance loaded", slog.String("path", path),
		slog.Int("vertices", g.Order()), slog.Int("edges", g.Size()))

	return g, nil
}

// writeFile creates path and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
