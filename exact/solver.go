// SPDX-License-Identifier: MIT
// Package: misopt/exact
//
// solver.go - branch-and-bound maximum independent set.
//
// Search outline:
//  1. Restrict g to the allowed vertices (dense re-indexing). With
//     SplitComponents each connected component is searched on its own and
//     the answers are concatenated; the node budget is shared.
//  2. Load the induced adjacency into bitsets and seed the incumbent with the min-degree greedy set; a good incumbent
//     prunes most of the tree early.
//  3. DFS over candidate sets. At each node:
//     - vertices of candidate-degree 0 or 1 are taken without branching
//       (some maximum independent set always contains them);
//     - prune when |current| + |candidates| ≤ |incumbent|, then, if enabled,
//       when |current| + cliqueCover(candidates) ≤ |incumbent|;
//     - branch on the candidate of maximum candidate-degree (lowest index on
//       ties): first take it, then discard it.
//  4. Soft limits: ctx is polled every CheckEvery nodes; MaxNodes caps the
//     tree. When either fires the incumbent is returned with Optimal=false.
//
// Complexity:
//   - Worst case exponential in |allowed|.
//   - Per node: O(k·w) where k is the candidate count and w = ceil(k/64).

package exact

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/misopt/bfs"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/core"
	"github.com/katalvlaran/misopt/greedy"
)

var (
	_ brkga.Oracle = (*Solver)(nil)
	_ brkga.Oracle = BruteForce{}
)

// Solver is an exact MIS oracle. The zero value uses DefaultOptions with the
// clique bound off; prefer NewSolver.
type Solver struct {
	opts Options
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts Options) *Solver {
	if opts.CheckEvery <= 0 || opts.CheckEvery&(opts.CheckEvery-1) != 0 {
		opts.CheckEvery = defaultCheckEvery
	}
	return &Solver{opts: opts}
}

// Solve implements brkga.Oracle.
func (s *Solver) Solve(ctx context.Context, g *core.Graph, allowed []int) ([]int, error) {
	res, err := s.SolveDetailed(ctx, g, allowed)
	if err != nil {
		return nil, err
	}
	return res.Set, nil
}

// SolveDetailed solves MIS on G[allowed] and reports optimality.
// An empty allowed yields an empty optimal result.
func (s *Solver) SolveDetailed(ctx context.Context, g *core.Graph, allowed []int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(allowed) == 0 {
		return Result{Optimal: true}, nil
	}
	sub, ids, err := g.InducedSubgraph(allowed)
	if err != nil {
		return Result{}, fmt.Errorf("exact: %w: %w", ErrVertexOutOfRange, err)
	}

	opts := s.opts
	if opts.CheckEvery <= 0 {
		opts.CheckEvery = defaultCheckEvery
	}

	parts := [][]int{nil} // nil selects the whole subgraph
	if opts.SplitComponents {
		parts, err = bfs.Components(sub, nil, bfs.WithContext(ctx))
		switch {
		case err != nil && ctx.Err() != nil:
			// the search below stops at once and keeps the greedy seed
			parts = [][]int{nil}
		case err != nil:
			return Result{}, fmt.Errorf("exact: %w", err)
		}
	}

	var (
		res  = Result{Optimal: true}
		part *core.Graph
		pids []int
	)
	for _, comp := range parts {
		part, pids = sub, nil
		if comp != nil {
			// comp is a valid, sorted subset of sub
			part, pids, _ = sub.InducedSubgraph(comp)
		}
		o := opts
		if opts.MaxNodes > 0 {
			o.MaxNodes = opts.MaxNodes - res.Nodes
		}
		e := newBBEngine(ctx, part, o)
		e.seed(greedy.Deterministic(part))
		if opts.MaxNodes > 0 && o.MaxNodes <= 0 {
			e.stopped = true
		} else {
			e.run()
		}
		res.Nodes += e.nodes
		res.Optimal = res.Optimal && !e.stopped

		for _, v := range e.best {
			if pids != nil {
				v = pids[v]
			}
			res.Set = append(res.Set, ids[v])
		}
	}
	slices.Sort(res.Set)

	return res, nil
}

// bbEngine holds the search state for one solve.
type bbEngine struct {
	ctx  context.Context
	opts Options
	k    int

	adj []bitset // adj[v] = N(v) within the subgraph

	cur  []int // current partial solution (local ids)
	best []int // incumbent

	nodes   int64
	stopped bool
}

func newBBEngine(ctx context.Context, g *core.Graph, opts Options) *bbEngine {
	k := g.Order()
	e := &bbEngine{ctx: ctx, opts: opts, k: k, adj: make([]bitset, k)}
	var v int
	for v = 0; v < k; v++ {
		e.adj[v] = newBitset(k)
		for _, w := range g.Neighbors(v) {
			e.adj[v].set(w)
		}
	}

	return e
}

func (e *bbEngine) seed(set []int) { e.best = slices.Clone(set) }

// limitHit performs the sparse ctx check and the node cap.
func (e *bbEngine) limitHit() bool {
	if e.stopped {
		return true
	}
	e.nodes++
	if e.opts.MaxNodes > 0 && e.nodes > e.opts.MaxNodes {
		e.stopped = true
		return true
	}
	if e.nodes&(e.opts.CheckEvery-1) == 0 && e.ctx.Err() != nil {
		e.stopped = true
		return true
	}
	return false
}

func (e *bbEngine) run() {
	if e.ctx.Err() != nil {
		e.stopped = true
		return
	}
	cand := newBitset(e.k)
	var v int
	for v = 0; v < e.k; v++ {
		cand.set(v)
	}
	e.expand(cand)
}

// record promotes cur to incumbent when larger.
func (e *bbEngine) record() {
	if len(e.cur) > len(e.best) {
		e.best = slices.Clone(e.cur)
	}
}

// expand explores the subtree rooted at the candidate set cand, which it owns.
func (e *bbEngine) expand(cand bitset) {
	if e.limitHit() {
		return
	}
	mark := len(e.cur)
	defer func() { e.cur = e.cur[:mark] }()

	// Forced moves: candidate-degree ≤ 1.
	for changed := true; changed; {
		changed = false
		cand.each(func(v int) {
			if !cand.has(v) {
				return
			}
			if cand.andCount(e.adj[v]) <= 1 {
				e.cur = append(e.cur, v)
				cand.clear(v)
				cand.andNot(e.adj[v])
				changed = true
			}
		})
	}

	size := cand.count()
	if size == 0 {
		e.record()
		return
	}
	if len(e.cur)+size <= len(e.best) {
		return
	}
	if e.opts.CliqueBound && len(e.cur)+e.cliqueCover(cand) <= len(e.best) {
		return
	}

	// Branch vertex: maximum candidate-degree, lowest index on ties.
	pick, pickDeg := -1, -1
	cand.each(func(v int) {
		if d := cand.andCount(e.adj[v]); d > pickDeg {
			pick, pickDeg = v, d
		}
	})

	// Take pick.
	with := cand.clone()
	with.clear(pick)
	with.andNot(e.adj[pick])
	e.cur = append(e.cur, pick)
	e.expand(with)
	e.cur = e.cur[:len(e.cur)-1]
	if e.stopped {
		return
	}

	// Discard pick.
	cand.clear(pick)
	e.expand(cand)
}

// cliqueCover partitions cand greedily into cliques and returns their number,
// an upper bound on the independence number of G[cand].
//
// Complexity: O(k·c·w) for c cliques.
func (e *bbEngine) cliqueCover(cand bitset) int {
	var common []bitset // common[i] = vertices adjacent to every member of clique i
	cand.each(func(v int) {
		for _, c := range common {
			if c.has(v) {
				c.and(e.adj[v])
				return
			}
		}
		nc := e.adj[v].clone()
		nc.and(cand)
		common = append(common, nc)
	})
	return len(common)
}
