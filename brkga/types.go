// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// types.go - sentinel errors, options, results and the oracle contract.
//
// Error policy:
//   - Configuration errors are returned by New before any generation runs.
//   - Decoding contract violations (wrong length, bad vertex) are returned
//     immediately and never truncated or padded.
//   - Oracle failures are recovered by the engine: the cycle is skipped,
//     counted in IntensifyStats.Failures and logged at Warn.

package brkga

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/misopt/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph was supplied.
	ErrNilGraph = errors.New("brkga: graph is nil")

	// ErrPopulationSize indicates p <= 0.
	ErrPopulationSize = errors.New("brkga: population size must be positive")

	// ErrFraction indicates an elite or mutant fraction outside (0,1),
	// or an elite bias outside [0,1].
	ErrFraction = errors.New("brkga: fraction out of range")

	// ErrFractionSum indicates pe + pm >= 1.
	ErrFractionSum = errors.New("brkga: elite and mutant fractions must sum below 1")

	// ErrNoElite indicates floor(p*pe) == 0, leaving crossover without elite parents.
	ErrNoElite = errors.New("brkga: elite slice is empty")

	// ErrBudget indicates a non-positive time limit or generation count.
	ErrBudget = errors.New("brkga: stop budget must be positive")

	// ErrWorkers indicates a negative worker count.
	ErrWorkers = errors.New("brkga: workers must be non-negative")

	// ErrIntensifyOptions indicates invalid intensification parameters.
	ErrIntensifyOptions = errors.New("brkga: invalid intensification options")

	// ErrChromosomeLength indicates len(chromosome) != n.
	ErrChromosomeLength = errors.New("brkga: chromosome length differs from vertex count")

	// ErrVertexOutOfRange indicates a gene referencing a vertex outside [0,n).
	ErrVertexOutOfRange = errors.New("brkga: gene vertex out of range")

	// ErrDuplicateVertex indicates a chromosome that is not a permutation.
	ErrDuplicateVertex = errors.New("brkga: duplicate vertex in chromosome")

	// ErrNotInitialized indicates Step or Intensify was called before Init.
	ErrNotInitialized = errors.New("brkga: engine not initialized")

	// ErrNoOracle indicates Intensify was called on an engine without an oracle.
	ErrNoOracle = errors.New("brkga: no oracle configured")

	// ErrOracle wraps every oracle failure: solver error, timeout without an
	// incumbent, or an answer that is not an independent subset of V′.
	ErrOracle = errors.New("brkga: oracle failed")
)

// Oracle solves maximum independent set restricted to allowed.
//
// Contract:
//   - The time limit arrives as the ctx deadline; implementations return
//     their best incumbent when it passes.
//   - The result is an independent set of g whose vertices all lie in allowed.
//     It may be empty only when nothing was found in time.
//   - allowed may hold a single vertex or the whole vertex set.
//   - Implementations run single-threaded; the engine never calls Solve concurrently.
type Oracle interface {
	Solve(ctx context.Context, g *core.Graph, allowed []int) ([]int, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, g *core.Graph, allowed []int) ([]int, error)

// Solve implements Oracle.
func (f OracleFunc) Solve(ctx context.Context, g *core.Graph, allowed []int) ([]int, error) {
	return f(ctx, g, allowed)
}

// StopPolicy selects the termination criterion of Run.
type StopPolicy int

const (
	// StopOnTime stops when Options.TimeLimit has elapsed since Init.
	StopOnTime StopPolicy = iota
	// StopOnGenerations stops after Options.Generations generations.
	StopOnGenerations
)

// String implements fmt.Stringer.
func (s StopPolicy) String() string {
	switch s {
	case StopOnTime:
		return "time"
	case StopOnGenerations:
		return "generations"
	default:
		return "unknown"
	}
}

// StopReason reports why Run returned.
type StopReason int

const (
	// StopBudget means the configured time or generation budget was used up.
	StopBudget StopReason = iota
	// StopCancelled means the caller's context was cancelled first.
	StopCancelled
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	if r == StopCancelled {
		return "cancelled"
	}
	return "budget"
}

// Source names what produced a Best-Global improvement.
type Source string

const (
	SourceInit       Source = "init"
	SourceGeneration Source = "generation"
	SourceIntensify  Source = "intensify"
)

// Improvement is emitted every time Best-Global strictly increases.
type Improvement struct {
	Fitness    int
	Elapsed    time.Duration
	Generation int
	Source     Source
}

// IntensifyOptions configures the oracle-backed intensification step.
type IntensifyOptions struct {
	// Interval k: intensify after generation 1 and every k generations after it.
	Interval int
	// EliteFraction na in (0,1]: share of the population whose decoded sets form V′ (at least one individual).
	EliteFraction float64
	// OracleTimeLimit bounds each oracle call.
	OracleTimeLimit time.Duration
	// HighKey is the key base for vertices in the oracle's solution.
	HighKey float64
	// LowKey is the key base for every other vertex.
	LowKey float64
	// Jitter is the width of the uniform noise added to either base.
	Jitter float64
}

// DefaultIntensifyOptions returns k=10, na=0.15, 1s oracle limit, keys 0.9/0.1 with 0.1 jitter.
func DefaultIntensifyOptions() IntensifyOptions {
	return IntensifyOptions{
		Interval:        10,
		EliteFraction:   0.15,
		OracleTimeLimit: time.Second,
		HighKey:         0.9,
		LowKey:          0.1,
		Jitter:          0.1,
	}
}

// Options configures an Engine.
type Options struct {
	// PopulationSize p.
	PopulationSize int
	// EliteFraction pe in (0,1).
	EliteFraction float64
	// MutantFraction pm in (0,1), pe+pm < 1.
	MutantFraction float64
	// EliteBias rhoe in [0,1]: probability a child gene comes from the elite parent.
	EliteBias float64
	// Seed for the engine RNG; 0 selects the package default seed.
	Seed uint64

	// Stop selects between TimeLimit and Generations.
	Stop        StopPolicy
	TimeLimit   time.Duration
	Generations int

	// Workers > 1 decodes each generation on that many goroutines.
	// Results do not depend on Workers.
	Workers int

	// Oracle enables intensification when non-nil.
	Oracle    Oracle
	Intensify IntensifyOptions

	// OnImprove, when set, is called synchronously on the engine goroutine.
	OnImprove func(Improvement)
	// Logger defaults to a discard logger.
	Logger *slog.Logger
	// Tracer defaults to the global otel tracer provider.
	Tracer trace.Tracer
}

// DefaultOptions returns the tuned parameters for the plain variant:
// p=264, pe=0.14, pm=0.25, rhoe=0.65, seed 42, 10s budget, no oracle.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 264,
		EliteFraction:  0.14,
		MutantFraction: 0.25,
		EliteBias:      0.65,
		Seed:           42,
		Stop:           StopOnTime,
		TimeLimit:      10 * time.Second,
		Workers:        1,
		Intensify:      DefaultIntensifyOptions(),
	}
}

// HybridOptions returns the tuned parameters for the intensified variant:
// p=340, pe=0.17, pm=0.24, rhoe=0.78. The caller supplies the Oracle.
func HybridOptions(oracle Oracle) Options {
	o := DefaultOptions()
	o.PopulationSize = 340
	o.EliteFraction = 0.17
	o.MutantFraction = 0.24
	o.EliteBias = 0.78
	o.Oracle = oracle

	return o
}

// IntensifyStats counts intensification activity over a run.
type IntensifyStats struct {
	Cycles       int // cycles triggered
	Skipped      int // cycles with empty V′
	Failures     int // oracle errors, empty or invalid answers
	Replacements int // synthetic individuals injected
	Improvements int // injections that raised Best-Global
}

// Result summarizes a run.
type Result struct {
	Best Individual
	// Solution is Best decoded, ascending.
	Solution    []int
	Fitness     int
	Generations int
	Elapsed     time.Duration
	FoundAt     time.Duration
	StopReason  StopReason
	Intensify   IntensifyStats
}
