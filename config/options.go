// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/exact"
	"github.com/katalvlaran/misopt/race"
)

// BRKGAOptions returns engine options bounded by Generations when it is
// positive and by TimeLimit otherwise. With hybrid set, the
// Hybrid parameter set is used and an exact.Solver is installed as oracle.
// Callbacks, logger and tracer are left for the caller.
func (c Config) BRKGAOptions(hybrid bool) brkga.Options {
	o := brkga.DefaultOptions()
	ga := c.BRKGA
	if hybrid {
		ga = c.Hybrid
		o.Oracle = exact.NewSolver(c.ExactOptions())
	}
	o.PopulationSize = ga.PopulationSize
	o.EliteFraction = ga.EliteFraction
	o.MutantFraction = ga.MutantFraction
	o.EliteBias = ga.EliteBias
	o.Seed = c.Seed
	o.Stop = brkga.StopOnTime
	o.TimeLimit = c.TimeLimit
	if c.Generations > 0 {
		o.Stop = brkga.StopOnGenerations
		o.Generations = c.Generations
	}
	o.Workers = c.Workers
	o.Intensify = brkga.IntensifyOptions{
		Interval:        c.Intensify.Interval,
		EliteFraction:   c.Intensify.EliteFraction,
		OracleTimeLimit: c.Intensify.OracleTimeLimit,
		HighKey:         c.Intensify.HighKey,
		LowKey:          c.Intensify.LowKey,
		Jitter:          c.Intensify.Jitter,
	}

	return o
}

// ExactOptions returns the oracle settings.
func (c Config) ExactOptions() exact.Options {
	return exact.Options{
		CheckEvery:      c.Exact.CheckEvery,
		MaxNodes:        c.Exact.MaxNodes,
		CliqueBound:     c.Exact.CliqueBound,
		SplitComponents: c.Exact.SplitComponents,
	}
}

// AnnealOptions returns annealer options sharing the seed and time limit.
// The seed is reinterpreted as int64.
func (c Config) AnnealOptions() anneal.Options {
	o := anneal.DefaultOptions()
	o.InitialTemp = c.Anneal.InitialTemp
	o.MinTemp = c.Anneal.MinTemp
	o.Cooling = c.Anneal.Cooling
	o.MaxIterations = c.Anneal.MaxIterations
	o.Seed = int64(c.Seed)
	o.TimeLimit = c.TimeLimit

	return o
}

// RaceOptions returns the race budget; sinks and metrics are left unset.
func (c Config) RaceOptions() race.Options {
	return race.Options{TimeLimit: c.TimeLimit, SampleInterval: c.Race.SampleInterval}
}
