// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// intensify.go - oracle-backed intensification.
//
// Protocol:
//  1. na = max(1, floor(p·EliteFraction)) top individuals are decoded.
//  2. V′ is the union of their sets; an empty V′ skips the cycle.
//  3. The oracle solves MIS restricted to V′ under its own deadline
//     (OracleTimeLimit), derived from the run context.
//  4. The answer must be a non-empty independent subset of V′; anything
//     else counts as a failure and leaves the population untouched.
//  5. A synthetic chromosome ranks the answer first (HighKey + jitter) and
//     everything else after it (LowKey + jitter).
//  6. It is decoded (the decoder may extend the answer), replaces the worst
//     individual, the population is re-sorted and Best-Global updated.

package brkga

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// IntensifyOutcome describes one intensification cycle.
type IntensifyOutcome struct {
	Subset   []int // V′, ascending
	Solution []int // oracle answer
	Fitness  int   // decoded fitness of the synthetic individual
	Skipped  bool  // V′ was empty
	Replaced bool  // the worst individual was replaced
	Improved bool  // Best-Global increased
}

// intensifyDue reports whether the generation just completed triggers a
// cycle: generations 1, 1+k, 1+2k, ...
func (e *Engine) intensifyDue() bool {
	return e.opts.Oracle != nil && (e.gen-1)%e.opts.Intensify.Interval == 0
}

// Intensify runs one cycle immediately. The returned error wraps ErrOracle
// for oracle failures; the population is unchanged in that case.
func (e *Engine) Intensify(ctx context.Context) (IntensifyOutcome, error) {
	var out IntensifyOutcome
	if e.pop == nil {
		return out, ErrNotInitialized
	}
	if e.opts.Oracle == nil {
		return out, ErrNoOracle
	}
	e.stats.Cycles++

	ctx, span := e.tracer.Start(ctx, "brkga.intensify",
		trace.WithAttributes(attribute.Int("generation", e.gen)))
	defer span.End()

	subset, err := e.reducedSubset()
	if err != nil {
		span.RecordError(err)
		return out, err
	}
	out.Subset = subset
	span.SetAttributes(attribute.Int("subset.size", len(subset)))
	if len(subset) == 0 {
		e.stats.Skipped++
		out.Skipped = true
		return out, nil
	}

	sol, err := e.solve(ctx, subset)
	if err != nil {
		e.stats.Failures++
		span.RecordError(err)
		span.SetStatus(codes.Error, "oracle failed")
		return out, err
	}
	out.Solution = sol
	span.SetAttributes(attribute.Int("solution.size", len(sol)))

	ind, err := e.dec.Score(SyntheticChromosome(e.g.Order(), sol, e.opts.Intensify, e.rng))
	if err != nil {
		return out, err
	}
	out.Fitness = ind.Fitness
	e.pop.ReplaceWorst(ind)
	e.stats.Replacements++
	out.Replaced = true
	if e.consider(ind, SourceIntensify) {
		e.stats.Improvements++
		out.Improved = true
	}
	span.SetAttributes(attribute.Int("fitness", ind.Fitness), attribute.Bool("improved", out.Improved))
	e.log.Debug("intensification",
		slog.Int("generation", e.gen),
		slog.Int("subset", len(subset)),
		slog.Int("oracle", len(sol)),
		slog.Int("fitness", ind.Fitness))

	return out, nil
}

// reducedSubset unions the decoded sets of the top na individuals.
//
// Complexity: O(na·(n log n + m)).
func (e *Engine) reducedSubset() ([]int, error) {
	p := e.pop.Len()
	na := max(1, int(math.Floor(float64(p)*e.opts.Intensify.EliteFraction)))
	na = min(na, p)

	in := make([]bool, e.g.Order())
	for _, ind := range e.pop.Elite(na) {
		set, err := e.dec.Decode(ind.Chromosome)
		if err != nil {
			return nil, err
		}
		for _, v := range set {
			in[v] = true
		}
	}
	subset := make([]int, 0)
	for v, ok := range in {
		if ok {
			subset = append(subset, v)
		}
	}

	return subset, nil
}

// solve calls the oracle under its own deadline and validates the answer.
func (e *Engine) solve(ctx context.Context, subset []int) ([]int, error) {
	octx, cancel := context.WithTimeout(ctx, e.opts.Intensify.OracleTimeLimit)
	defer cancel()

	sol, err := e.opts.Oracle.Solve(octx, e.g, subset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOracle, err)
	}
	if len(sol) == 0 {
		return nil, fmt.Errorf("%w: no incumbent", ErrOracle)
	}
	allowed := make([]bool, e.g.Order())
	for _, v := range subset {
		allowed[v] = true
	}
	for _, v := range sol {
		if v < 0 || v >= len(allowed) || !allowed[v] {
			return nil, fmt.Errorf("%w: vertex %d outside reduced subset", ErrOracle, v)
		}
	}
	if err = e.g.CheckIndependent(sol); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOracle, err)
	}

	return sol, nil
}

// SyntheticChromosome encodes solution with maximal decoder priority:
// members get HighKey+U[0,Jitter), all other vertices LowKey+U[0,Jitter).
// With validated options every member key exceeds every non-member key, so
// decoding selects all of solution before considering anything else.
//
// Complexity: O(n).
func SyntheticChromosome(n int, solution []int, in IntensifyOptions, rng *rand.Rand) Chromosome {
	member := make([]bool, n)
	for _, v := range solution {
		if v >= 0 && v < n {
			member[v] = true
		}
	}
	c := make(Chromosome, n)
	var v int
	for v = 0; v < n; v++ {
		if member[v] {
			c[v] = Gene{Key: jittered(rng, in.HighKey, in.Jitter), Vertex: v}
		} else {
			c[v] = Gene{Key: jittered(rng, in.LowKey, in.Jitter), Vertex: v}
		}
	}

	return c
}
