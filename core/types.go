// SPDX-License-Identifier: MIT
// Package: misopt/core
//
// types.go - sentinel errors, Graph and Builder declarations.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyGraph indicates a graph with no vertices was requested.
	ErrEmptyGraph = errors.New("core: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was added while loops are rejected.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrDuplicateVertex indicates a vertex listed more than once in a set.
	ErrDuplicateVertex = errors.New("core: vertex listed twice")

	// ErrNotIndependent indicates two vertices of a set share an edge.
	ErrNotIndependent = errors.New("core: set is not independent")
)

// Graph is an immutable undirected simple graph on vertices 0..n-1.
//
// The zero value is not usable; construct with New or Builder.Build.
type Graph struct {
	adj   [][]int // adj[v] sorted ascending, symmetric, loop-free
	edges int     // number of undirected edges
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// IgnoreLoops makes AddEdge silently drop self-loops instead of failing.
// Edge-list files in the wild occasionally contain them; an independent set
// is unaffected by loops once they are discarded.
func IgnoreLoops() BuilderOption {
	return func(b *Builder) { b.ignoreLoops = true }
}

// Builder accumulates undirected edges and produces a Graph.
// Parallel edges are collapsed. A Builder is not safe for concurrent use.
type Builder struct {
	n           int
	adj         [][]int
	ignoreLoops bool
}
