// SPDX-License-Identifier: MIT
// Package: misopt/core
//
// view.go - non-mutating views derived from a Graph.
//
// InducedSubgraph keeps only the listed vertices and the edges with both
// endpoints kept, re-indexing them densely. The input graph is not touched.

package core

import (
	"fmt"
	"slices"
)

// InducedSubgraph returns G[keep] together with the local→global id map.
// Local vertex i of the result corresponds to global vertex ids[i]; ids is
// keep sorted ascending with duplicates removed.
//
// Complexity: O(n + Σ deg(v) for v in keep).
func (g *Graph) InducedSubgraph(keep []int) (*Graph, []int, error) {
	ids := slices.Clone(keep)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return nil, nil, fmt.Errorf("InducedSubgraph: %w", ErrEmptyGraph)
	}

	// local[v] = index in ids, or -1 when v is dropped.
	local := make([]int, len(g.adj))
	var i int
	for i = range local {
		local[i] = -1
	}
	for i = 0; i < len(ids); i++ {
		if !g.HasVertex(ids[i]) {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", ids[i], ErrVertexOutOfRange)
		}
		local[ids[i]] = i
	}

	var (
		adj   = make([][]int, len(ids))
		edges int
		lw    int
	)
	for i = 0; i < len(ids); i++ {
		for _, w := range g.adj[ids[i]] {
			if lw = local[w]; lw >= 0 {
				adj[i] = append(adj[i], lw)
			}
		}
		edges += len(adj[i])
	}

	return &Graph{adj: adj, edges: edges / 2}, ids, nil
}
