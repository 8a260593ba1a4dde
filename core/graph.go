// SPDX-License-Identifier: MIT
// Package: misopt/core
//
// graph.go - read-only queries on Graph.
//
// Concurrency: every method is read-only and safe for concurrent use.
// Slices returned by Neighbors alias internal storage and must not be modified.

package core

import (
	"fmt"
	"slices"
)

// Order returns the number of vertices n.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges m.
func (g *Graph) Size() int { return g.edges }

// Neighbors returns the sorted neighbor list of v. The slice is shared with
// the graph; callers must treat it as read-only.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns |N(v)|.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// HasVertex reports whether v lies in [0, n).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// HasEdge reports whether {u, v} is an edge.
//
// Complexity: O(log min(deg u, deg v)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	if len(g.adj[u]) > len(g.adj[v]) {
		u, v = v, u
	}
	_, ok := slices.BinarySearch(g.adj[u], v)

	return ok
}

// Edges returns every edge once as (u, v) with u < v, in lexicographic order.
//
// Complexity: O(n + m).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	var u int
	for u = 0; u < len(g.adj); u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// MaxDegree returns Δ(G).
func (g *Graph) MaxDegree() int {
	var best int
	for _, nb := range g.adj {
		if len(nb) > best {
			best = len(nb)
		}
	}

	return best
}

// CheckIndependent verifies that set holds distinct in-range vertices with
// no edge between any two of them. It returns nil on success.
//
// Complexity: O(n + Σ deg(v) for v in set).
func (g *Graph) CheckIndependent(set []int) error {
	in := make([]bool, len(g.adj))
	for _, v := range set {
		if !g.HasVertex(v) {
			return fmt.Errorf("CheckIndependent: vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if in[v] {
			return fmt.Errorf("CheckIndependent: vertex %d: %w", v, ErrDuplicateVertex)
		}
		in[v] = true
	}
	for _, v := range set {
		for _, w := range g.adj[v] {
			if in[w] {
				return fmt.Errorf("CheckIndependent: edge {%d,%d}: %w", v, w, ErrNotIndependent)
			}
		}
	}

	return nil
}
