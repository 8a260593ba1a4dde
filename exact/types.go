// SPDX-License-Identifier: MIT
// Package: misopt/exact
//
// types.go - sentinel errors, options and results.

package exact

import "errors"

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("exact: graph is nil")

	// ErrVertexOutOfRange indicates an allowed vertex outside the graph.
	ErrVertexOutOfRange = errors.New("exact: vertex out of range")

	// ErrTooLarge indicates BruteForce was asked to enumerate too many vertices.
	ErrTooLarge = errors.New("exact: instance too large for enumeration")
)

// Options configures Solver.
type Options struct {
	// CheckEvery is the number of search nodes between deadline checks.
	// It must be a power of two; 0 selects 1024.
	CheckEvery int64
	// MaxNodes stops the search after this many nodes; 0 means unlimited.
	MaxNodes int64
	// CliqueBound enables the greedy clique-cover upper bound.
	CliqueBound bool
	// SplitComponents solves each connected component of G[allowed] separately.
	SplitComponents bool
}

// DefaultOptions returns CheckEvery=1024, no node limit, clique bound on.
func DefaultOptions() Options {
	return Options{CheckEvery: defaultCheckEvery, CliqueBound: true, SplitComponents: true}
}

const defaultCheckEvery int64 = 1024

// Result is the detailed outcome of a solve.
type Result struct {
	// Set is an independent set of the input graph within the allowed vertices.
	Set []int
	// Optimal is true when the search completed before any limit fired.
	Optimal bool
	// Nodes counts search nodes expanded.
	Nodes int64
}
