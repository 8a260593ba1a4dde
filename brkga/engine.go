// SPDX-License-Identifier: MIT
// Package: misopt/brkga
//
// engine.go - the generational loop and anytime Best-Global tracking.
//
// One Engine serves both variants: with Options.Oracle == nil it is a plain
// BRKGA, otherwise every Intensify.Interval generations it runs the
// oracle-backed intensification step (intensify.go).
//
// Generation step (size-preserving):
//  1. Copy the top n_elite individuals unchanged.
//  2. Append n_mutant fresh random individuals.
//  3. Append n_cross children of (uniform elite, uniform non-elite) parents.
//  4. Swap the new slice in, sort, update Best-Global.
//
// Determinism: every RNG draw of a generation happens on the engine goroutine
// before decoding fans out, so a fixed Seed fixes the whole run regardless
// of Options.Workers (under a generation budget).
//
// Concurrency: Engine methods must be called from one goroutine.
// BestFitness and Elapsed are the exceptions; they may be polled from any
// goroutine while Run is in progress.

package brkga

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/misopt/core"
	"github.com/katalvlaran/misopt/internal/logging"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/misopt/brkga"

// Engine runs BRKGA on one graph.
type Engine struct {
	g      *core.Graph
	dec    *Decoder
	opts   Options
	slots  Slots
	rng    *rand.Rand
	log    *slog.Logger
	tracer trace.Tracer

	pop     *Population
	best    Individual
	foundAt time.Duration
	gen     int
	stats   IntensifyStats

	// Published for concurrent readers.
	bestFit atomic.Int64
	start   atomic.Pointer[time.Time]
}

// New validates opts against g and returns an engine ready for Init or Run.
//
// Errors: ErrNilGraph plus every configuration sentinel in types.go.
func New(g *core.Graph, opts Options) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	slots, err := validateOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("brkga.New: %w", err)
	}
	dec, err := NewDecoder(g)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		g:      g,
		dec:    dec,
		opts:   opts,
		slots:  slots,
		rng:    rngFromSeed(opts.Seed),
		log:    opts.Logger,
		tracer: opts.Tracer,
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	e.bestFit.Store(-1)

	return e, nil
}

// Slots returns the per-generation composition.
func (e *Engine) Slots() Slots { return e.slots }

// Population returns the live population (nil before Init).
func (e *Engine) Population() *Population { return e.pop }

// Generation returns the number of completed generations.
func (e *Engine) Generation() int { return e.gen }

// Best returns a copy of Best-Global.
func (e *Engine) Best() Individual { return e.best.Clone() }

// BestFitness returns Best-Global's fitness, or -1 before Init.
// Safe for concurrent use.
func (e *Engine) BestFitness() int { return int(e.bestFit.Load()) }

// Elapsed returns the time since Init, or 0 before it.
// Safe for concurrent use.
func (e *Engine) Elapsed() time.Duration {
	if t := e.start.Load(); t != nil {
		return time.Since(*t)
	}
	return 0
}

// Stats returns the intensification counters so far.
func (e *Engine) Stats() IntensifyStats { return e.stats }

// Init builds the initial population of p random individuals, sorts it and
// seeds Best-Global. Calling Init again restarts the run (the RNG stream
// continues).
func (e *Engine) Init(ctx context.Context) error {
	now := time.Now()
	e.start.Store(&now)
	e.gen = 0
	e.stats = IntensifyStats{}
	e.bestFit.Store(-1)

	p := e.opts.PopulationSize
	chroms := make([]Chromosome, p)
	var i int
	for i = 0; i < p; i++ {
		chroms[i] = NewRandomChromosome(e.g.Order(), e.rng)
	}
	inds, err := e.score(ctx, chroms)
	if err != nil {
		return fmt.Errorf("brkga.Init: %w", err)
	}
	e.pop = NewPopulation(inds)
	e.best = e.pop.Best()
	e.foundAt = e.Elapsed()
	e.bestFit.Store(int64(e.best.Fitness))
	e.emit(SourceInit)

	return nil
}

// Step runs one generation and, when due, one intensification cycle.
// Oracle failures never surface here.
func (e *Engine) Step(ctx context.Context) error {
	if e.pop == nil {
		return ErrNotInitialized
	}
	if err := e.nextGeneration(ctx); err != nil {
		return err
	}
	if e.intensifyDue() && ctx.Err() == nil {
		if _, err := e.Intensify(ctx); err != nil {
			e.log.Warn("intensification skipped",
				slog.Int("generation", e.gen),
				slog.String("error", err.Error()))
		}
	}

	return nil
}

// Run initializes if needed and iterates Step until the budget is used up or
// ctx is cancelled. Both are normal stops returning the best found so far.
// Budget and ctx are polled between generations; the time budget counts
// from Init.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	parent := ctx
	if e.pop == nil {
		if err := e.Init(ctx); err != nil {
			return Result{}, err
		}
	}
	if e.opts.Stop == StopOnTime {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, e.start.Load().Add(e.opts.TimeLimit))
		defer cancel()
	}

	for ctx.Err() == nil {
		if e.opts.Stop == StopOnGenerations && e.gen >= e.opts.Generations {
			break
		}
		if err := e.Step(ctx); err != nil {
			return e.result(parent), err
		}
	}

	return e.result(parent), nil
}

// result snapshots the run; parent distinguishes cancellation from budget.
func (e *Engine) result(parent context.Context) Result {
	reason := StopBudget
	if parent.Err() != nil {
		reason = StopCancelled
	}
	sol, _ := e.dec.Decode(e.best.Chromosome)
	slices.Sort(sol)

	return Result{
		Best:        e.best.Clone(),
		Solution:    sol,
		Fitness:     e.best.Fitness,
		Generations: e.gen,
		Elapsed:     e.Elapsed(),
		FoundAt:     e.foundAt,
		StopReason:  reason,
		Intensify:   e.stats,
	}
}

// nextGeneration composes, scores and installs the next population.
//
// Complexity: O(p·(n log n + m)).
func (e *Engine) nextGeneration(ctx context.Context) error {
	var (
		p      = e.pop.Len()
		n      = e.g.Order()
		s      = e.slots
		rhoe   = e.opts.EliteBias
		next   = make([]Individual, 0, p)
		fresh  = make([]Chromosome, 0, s.Mutant+s.Crossover)
		i      int
		ei, oi int
	)

	next = append(next, e.pop.Elite(s.Elite)...)
	for i = 0; i < s.Mutant; i++ {
		fresh = append(fresh, NewRandomChromosome(n, e.rng))
	}
	for i = 0; i < s.Crossover; i++ {
		ei, oi = pickParents(e.rng, s.Elite, p)
		fresh = append(fresh, Crossover(e.pop.At(ei).Chromosome, e.pop.At(oi).Chromosome, rhoe, e.rng))
	}

	scored, err := e.score(ctx, fresh)
	if err != nil {
		return fmt.Errorf("brkga.Step: %w", err)
	}
	next = append(next, scored...)

	e.pop.swap(next)
	e.gen++
	e.consider(e.pop.Best(), SourceGeneration)

	return nil
}

// consider promotes cand to Best-Global when strictly better.
func (e *Engine) consider(cand Individual, src Source) bool {
	if !Better(cand, e.best) {
		return false
	}
	e.best = cand
	e.foundAt = e.Elapsed()
	e.bestFit.Store(int64(cand.Fitness))
	e.emit(src)

	return true
}

func (e *Engine) emit(src Source) {
	if e.opts.OnImprove == nil {
		return
	}
	e.opts.OnImprove(Improvement{
		Fitness:    e.best.Fitness,
		Elapsed:    e.foundAt,
		Generation: e.gen,
		Source:     src,
	})
}

// score decodes chroms, in parallel when Workers > 1. Output order matches
// input order.
func (e *Engine) score(ctx context.Context, chroms []Chromosome) ([]Individual, error) {
	out := make([]Individual, len(chroms))
	workers := e.opts.Workers
	if workers <= 1 || len(chroms) < 2 {
		var err error
		for i, c := range chroms {
			if out[i], err = e.dec.Score(c); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(chroms) + workers - 1) / workers
	for lo := 0; lo < len(chroms); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(chroms))
		g.Go(func() error {
			var err error
			for i := lo; i < hi; i++ {
				if out[i], err = e.dec.Score(chroms[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
