// SPDX-License-Identifier: MIT

// Package anneal implements simulated annealing for maximum independent set.
//
// State is always an independent set S. A move picks a uniform random vertex
// v: if v ∈ S it is removed, otherwise it is added when none of its
// neighbors is in S. S may pass through the empty set; the best set seen is
// kept separately. The size change δ ∈ {-1,0,+1} is
// accepted when δ > 0 or exp(δ/T) > U[0,1). T cools geometrically by Cooling
// per iteration and never drops below MinTemp. The walk starts from the
// id-order greedy set.
//
// Per-vertex counts of in-set neighbors make every move O(deg v).
package anneal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/misopt/core"
	"github.com/katalvlaran/misopt/greedy"
	"github.com/katalvlaran/misopt/internal/logging"
)

// Sentinel errors.
var (
	ErrNilGraph    = errors.New("anneal: graph is nil")
	ErrTemperature = errors.New("anneal: temperatures must satisfy 0 < MinTemp <= InitialTemp")
	ErrCooling     = errors.New("anneal: cooling factor must lie in (0,1)")
	ErrBudget      = errors.New("anneal: a time limit or iteration cap is required")
)

// checkEvery is the iteration stride between clock and ctx checks.
const checkEvery = 1024

// Improvement is emitted whenever the best size strictly increases.
type Improvement struct {
	Fitness   int
	Elapsed   time.Duration
	Iteration int64
}

// Options configures an Annealer.
type Options struct {
	InitialTemp float64
	MinTemp     float64
	Cooling     float64
	Seed        int64

	// TimeLimit and MaxIterations bound the run; at least one must be positive.
	TimeLimit     time.Duration
	MaxIterations int64

	OnImprove func(Improvement)
	Logger    *slog.Logger
}

// DefaultOptions returns T0=100, Tmin=0.1, alpha=0.9995, seed 42, 10s.
func DefaultOptions() Options {
	return Options{
		InitialTemp: 100,
		MinTemp:     0.1,
		Cooling:     0.9995,
		Seed:        42,
		TimeLimit:   10 * time.Second,
	}
}

// Result summarizes a run.
type Result struct {
	Solution   []int
	Fitness    int
	Iterations int64
	Elapsed    time.Duration
	FoundAt    time.Duration
}

// Annealer runs simulated annealing on one graph.
type Annealer struct {
	g    *core.Graph
	opts Options
	log  *slog.Logger

	bestFit atomic.Int64
	start   atomic.Pointer[time.Time]
}

// New validates opts.
func New(g *core.Graph, opts Options) (*Annealer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !(opts.MinTemp > 0 && opts.MinTemp <= opts.InitialTemp) {
		return nil, fmt.Errorf("anneal.New: T0=%g Tmin=%g: %w", opts.InitialTemp, opts.MinTemp, ErrTemperature)
	}
	if !(opts.Cooling > 0 && opts.Cooling < 1) {
		return nil, fmt.Errorf("anneal.New: alpha=%g: %w", opts.Cooling, ErrCooling)
	}
	if opts.TimeLimit <= 0 && opts.MaxIterations <= 0 {
		return nil, ErrBudget
	}
	a := &Annealer{g: g, opts: opts, log: opts.Logger}
	if a.log == nil {
		a.log = logging.Discard()
	}
	a.bestFit.Store(-1)

	return a, nil
}

// BestFitness returns the best size so far, -1 before Run. Safe for concurrent use.
func (a *Annealer) BestFitness() int { return int(a.bestFit.Load()) }

// Elapsed returns the time since Run started. Safe for concurrent use.
func (a *Annealer) Elapsed() time.Duration {
	if t := a.start.Load(); t != nil {
		return time.Since(*t)
	}
	return 0
}

// state is the current independent set with O(1) membership updates.
type state struct {
	g        *core.Graph
	members  []int
	pos      []int // index in members, -1 if absent
	conflict []int // number of neighbors in the set
}

func newState(g *core.Graph, init []int) *state {
	s := &state{g: g, pos: make([]int, g.Order()), conflict: make([]int, g.Order())}
	for i := range s.pos {
		s.pos[i] = -1
	}
	for _, v := range init {
		s.add(v)
	}
	return s
}

func (s *state) add(v int) {
	s.pos[v] = len(s.members)
	s.members = append(s.members, v)
	for _, w := range s.g.Neighbors(v) {
		s.conflict[w]++
	}
}

func (s *state) remove(v int) {
	i, last := s.pos[v], len(s.members)-1
	s.members[i] = s.members[last]
	s.pos[s.members[i]] = i
	s.members = s.members[:last]
	s.pos[v] = -1
	for _, w := range s.g.Neighbors(v) {
		s.conflict[w]--
	}
}

// Run anneals until the time limit, the iteration cap or ctx stops it.
// Stopping is never an error; the best set found is returned.
func (a *Annealer) Run(ctx context.Context) (Result, error) {
	var (
		now      = time.Now()
		rng      = rand.New(rand.NewSource(a.opts.Seed))
		n        = a.g.Order()
		s        = newState(a.g, greedy.ByID(a.g))
		best     = slices.Clone(s.members)
		foundAt  time.Duration
		temp     = a.opts.InitialTemp
		iter     int64
		deadline time.Time
		v, delta int
	)
	a.start.Store(&now)
	if a.opts.TimeLimit > 0 {
		deadline = now.Add(a.opts.TimeLimit)
	}
	a.publish(len(best), 0, 0)

	for {
		if a.opts.MaxIterations > 0 && iter >= a.opts.MaxIterations {
			break
		}
		if iter%checkEvery == 0 {
			if ctx.Err() != nil || (!deadline.IsZero() && !time.Now().Before(deadline)) {
				break
			}
		}
		iter++

		v = rng.Intn(n)
		switch {
		case s.pos[v] >= 0:
			delta = -1
		case s.conflict[v] == 0:
			delta = 1
		default:
			delta = 0
		}
		if delta > 0 || math.Exp(float64(delta)/temp) > rng.Float64() {
			switch delta {
			case 1:
				s.add(v)
			case -1:
				s.remove(v)
			}
			if len(s.members) > len(best) {
				best = slices.Clone(s.members)
				foundAt = a.Elapsed()
				a.publish(len(best), foundAt, iter)
			}
		}
		temp = max(a.opts.MinTemp, temp*a.opts.Cooling)
	}

	slices.Sort(best)
	a.log.Debug("anneal finished", slog.Int("fitness", len(best)), slog.Int64("iterations", iter))

	return Result{
		Solution:   best,
		Fitness:    len(best),
		Iterations: iter,
		Elapsed:    a.Elapsed(),
		FoundAt:    foundAt,
	}, nil
}

func (a *Annealer) publish(fit int, at time.Duration, iter int64) {
	a.bestFit.Store(int64(fit))
	if a.opts.OnImprove != nil {
		a.opts.OnImprove(Improvement{Fitness: fit, Elapsed: at, Iteration: iter})
	}
}
