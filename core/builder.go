// SPDX-License-Identifier: MIT
// Package: misopt/core
//
// builder.go - incremental construction of an immutable Graph.
//
// Contract:
//   - n >= 1 (else ErrEmptyGraph).
//   - AddEdge(u,v) records both directions; duplicates are collapsed in Build.
//   - Build may be called once; the Builder must not be reused afterwards.

package core

import (
	"fmt"
	"slices"
)

// NewBuilder returns a Builder for a graph with n vertices.
//
// Complexity: O(n).
func NewBuilder(n int, opts ...BuilderOption) (*Builder, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, ErrEmptyGraph)
	}
	b := &Builder{n: n, adj: make([][]int, n)}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Order returns the number of vertices the builder was created for.
func (b *Builder) Order() int { return b.n }

// AddEdge records the undirected edge {u, v}.
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int) error {
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, b.n, ErrVertexOutOfRange)
	}
	if u == v {
		if b.ignoreLoops {
			return nil
		}
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	b.adj[u] = append(b.adj[u], v)
	b.adj[v] = append(b.adj[v], u)

	return nil
}

// Build sorts and deduplicates every neighbor list and returns the Graph.
//
// Complexity: O(n + m log Δ).
func (b *Builder) Build() *Graph {
	var (
		v     int
		edges int
	)
	for v = 0; v < b.n; v++ {
		slices.Sort(b.adj[v])
		b.adj[v] = slices.Compact(b.adj[v])
		b.adj[v] = slices.Clip(b.adj[v])
		edges += len(b.adj[v])
	}
	g := &Graph{adj: b.adj, edges: edges / 2}
	b.adj = nil

	return g
}

// New builds a Graph with n vertices from an explicit edge list.
//
// Complexity: O(n + m log Δ).
func New(n int, edges [][2]int, opts ...BuilderOption) (*Graph, error) {
	b, err := NewBuilder(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}
