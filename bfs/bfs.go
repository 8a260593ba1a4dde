// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/misopt/core"
)

// walker encapsulates mutable BFS state shared by every start vertex of
// one Components call.
type walker struct {
	graph *core.Graph
	opts  Options
	in    []bool // vertices the walk may enter
	seen  []bool
	queue []int
	order []int
}

func newWalker(g *core.Graph, o Options) *walker {
	n := g.Order()
	return &walker{
		graph: g,
		opts:  o,
		in:    make([]bool, n),
		seen:  make([]bool, n),
		queue: make([]int, 0, n),
		order: make([]int, 0, n),
	}
}

func (w *walker) enqueue(v int) {
	w.seen[v] = true
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or cancellation. Visited vertices
// are appended to order.
func (w *walker) loop() error {
	var v int
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		v, w.queue = w.queue[0], w.queue[1:]
		w.order = append(w.order, v)
		for _, u := range w.graph.Neighbors(v) {
			if w.in[u] && !w.seen[u] {
				w.enqueue(u)
			}
		}
	}
	return nil
}

// Components returns the connected components of the subgraph of g induced
// by subset; a nil subset means every vertex. Duplicates in subset are
// ignored. Each component is sorted ascending and components are ordered
// by their smallest vertex. A cancelled context aborts with ctx.Err().
//
// Complexity: O(V + E).
func Components(g *core.Graph, subset []int, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(g, o)
	if subset == nil {
		for v := range w.in {
			w.in[v] = true
		}
	}
	for _, v := range subset {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("Components: %d: %w", v, ErrVertexOutOfRange)
		}
		w.in[v] = true
	}

	var (
		comps [][]int
		mark  int
	)
	for s := range w.in {
		if !w.in[s] || w.seen[s] {
			continue
		}
		mark = len(w.order)
		w.enqueue(s)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := slices.Clone(w.order[mark:])
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
