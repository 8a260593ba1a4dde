// SPDX-License-Identifier: MIT

// Package config loads misopt run parameters.
//
// Values are layered: Default, then an optional YAML file, then MISOPT_*
// environment variables. The result is checked with validator struct tags
// plus the cross-field rules the optimizers impose (pe+pm < 1, at least
// one elite slot, ordered intensification key bands). Nothing is clamped.
//
// Environment overrides:
//
//	MISOPT_SEED             uint64
//	MISOPT_TIME_LIMIT       duration (e.g. 30s)
//	MISOPT_WORKERS          int
//	MISOPT_SAMPLE_INTERVAL  duration
//	MISOPT_LOG_LEVEL        debug|info|warn|error
//	MISOPT_LOG_FORMAT       text|json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/exact"
	"github.com/katalvlaran/misopt/race"
)

// Sentinel errors.
var (
	ErrRead    = errors.New("config: cannot read file")
	ErrParse   = errors.New("config: malformed YAML")
	ErrEnv     = errors.New("config: malformed environment override")
	ErrInvalid = errors.New("config: invalid value")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MISOPT_"

// GA holds one BRKGA parameter set.
type GA struct {
	PopulationSize int     `yaml:"population_size" validate:"gte=1"`
	EliteFraction  float64 `yaml:"elite_fraction" validate:"gt=0,lt=1"`
	MutantFraction float64 `yaml:"mutant_fraction" validate:"gt=0,lt=1"`
	EliteBias      float64 `yaml:"elite_bias" validate:"gte=0,lte=1"`
}

// Intensify holds the oracle intensification parameters.
type Intensify struct {
	Interval        int           `yaml:"interval" validate:"gte=1"`
	EliteFraction   float64       `yaml:"elite_fraction" validate:"gt=0,lte=1"`
	OracleTimeLimit time.Duration `yaml:"oracle_time_limit" validate:"gt=0"`
	HighKey         float64       `yaml:"high_key" validate:"gte=0,lte=1"`
	LowKey          float64       `yaml:"low_key" validate:"gte=0,lte=1"`
	Jitter          float64       `yaml:"jitter" validate:"gte=0,lte=1"`
}

// Exact bounds the branch-and-bound oracle.
type Exact struct {
	CheckEvery      int64 `yaml:"check_every" validate:"pow2"`
	MaxNodes        int64 `yaml:"max_nodes" validate:"gte=0"`
	CliqueBound     bool  `yaml:"clique_bound"`
	SplitComponents bool  `yaml:"split_components"`
}

// Anneal holds simulated annealing parameters.
type Anneal struct {
	InitialTemp   float64 `yaml:"initial_temp" validate:"gt=0"`
	MinTemp       float64 `yaml:"min_temp" validate:"gt=0,ltefield=InitialTemp"`
	Cooling       float64 `yaml:"cooling" validate:"gt=0,lt=1"`
	MaxIterations int64   `yaml:"max_iterations" validate:"gte=0"`
}

// Race holds comparison parameters.
type Race struct {
	SampleInterval time.Duration `yaml:"sample_interval" validate:"gt=0"`
}

// Log selects the logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Config is the full set of run parameters.
type Config struct {
	Seed        uint64        `yaml:"seed"`
	TimeLimit   time.Duration `yaml:"time_limit" validate:"gt=0"`
	Generations int           `yaml:"generations" validate:"gte=0"` // > 0 bounds BRKGA by generations instead
	Workers     int           `yaml:"workers" validate:"gte=1,lte=1024"`

	BRKGA     GA        `yaml:"brkga"`
	Hybrid    GA        `yaml:"hybrid"`
	Intensify Intensify `yaml:"intensify"`
	Exact     Exact     `yaml:"exact"`
	Anneal    Anneal    `yaml:"anneal"`
	Race      Race      `yaml:"race"`
	Log       Log       `yaml:"log"`
}

// Default returns the tuned parameters.
func Default() Config {
	plain := brkga.DefaultOptions()
	hy := brkga.HybridOptions(nil)
	in := brkga.DefaultIntensifyOptions()
	ex := exact.DefaultOptions()
	sa := anneal.DefaultOptions()

	return Config{
		Seed:      plain.Seed,
		TimeLimit: plain.TimeLimit,
		Workers:   1,
		BRKGA:     gaFrom(plain),
		Hybrid:    gaFrom(hy),
		Intensify: Intensify{
			Interval:        in.Interval,
			EliteFraction:   in.EliteFraction,
			OracleTimeLimit: in.OracleTimeLimit,
			HighKey:         in.HighKey,
			LowKey:          in.LowKey,
			Jitter:          in.Jitter,
		},
		Exact: Exact{
			CheckEvery:      ex.CheckEvery,
			MaxNodes:        ex.MaxNodes,
			CliqueBound:     ex.CliqueBound,
			SplitComponents: ex.SplitComponents,
		},
		Anneal: Anneal{InitialTemp: sa.InitialTemp, MinTemp: sa.MinTemp, Cooling: sa.Cooling},
		Race:   Race{SampleInterval: race.DefaultOptions().SampleInterval},
		Log:    Log{Level: "info", Format: "text"},
	}
}

func gaFrom(o brkga.Options) GA {
	return GA{
		PopulationSize: o.PopulationSize,
		EliteFraction:  o.EliteFraction,
		MutantFraction: o.MutantFraction,
		EliteBias:      o.EliteBias,
	}
}

// Load applies the file at path (skipped when empty) and the environment
// on top of Default, then validates.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("Load: %w: %w", ErrRead, err)
		}
		if err = c.decode(data); err != nil {
			return c, fmt.Errorf("Load: %s: %w", path, err)
		}
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return c, fmt.Errorf("Load: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("Load: %w", err)
	}

	return c, nil
}

// Parse is Load for in-memory YAML, without the environment layer.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := c.decode(data); err != nil {
		return c, fmt.Errorf("Parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("Parse: %w", err)
	}
	return c, nil
}

// decode overlays YAML onto c. Unknown keys are rejected.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// applyEnv overlays MISOPT_* values read through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if c.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return envErr("SEED", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "TIME_LIMIT"); ok {
		if c.TimeLimit, err = time.ParseDuration(v); err != nil {
			return envErr("TIME_LIMIT", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "GENERATIONS"); ok {
		if c.Generations, err = strconv.Atoi(v); err != nil {
			return envErr("GENERATIONS", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		if c.Workers, err = strconv.Atoi(v); err != nil {
			return envErr("WORKERS", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "SAMPLE_INTERVAL"); ok {
		if c.Race.SampleInterval, err = time.ParseDuration(v); err != nil {
			return envErr("SAMPLE_INTERVAL", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

func envErr(name, v string, err error) error {
	return fmt.Errorf("%s%s=%q: %w: %w", EnvPrefix, name, v, ErrEnv, err)
}
