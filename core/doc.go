// SPDX-License-Identifier: MIT

// Package core defines the read-only graph view consumed by every solver in
// misopt.
//
// A Graph is an undirected simple graph over the dense id space 0..n-1.
// It is assembled once (New or Builder) and never mutated afterwards, so it
// can be shared freely between goroutines without locks: the BRKGA decoder,
// the exact oracle, the annealer and the race workers all read the same
// instance concurrently.
//
// Invariants:
//   - Vertex ids are dense in [0, n). Callers that hold 1-based ids normalize
//     them once at the boundary (see package graphio).
//   - Adjacency is symmetric: v ∈ N(u) ⇔ u ∈ N(v).
//   - Neighbor lists are sorted ascending, contain no duplicates and never
//     contain the vertex itself.
//
// Errors:
//
//	ErrEmptyGraph        - n <= 0.
//	ErrVertexOutOfRange  - an endpoint is outside [0, n).
//	ErrLoopNotAllowed    - self-loop added to a builder without IgnoreLoops.
//
// Complexity:
//   - Build: O(n + m log Δ) where Δ is the maximum degree.
//   - Neighbors/Degree: O(1). HasEdge: O(log Δ).
//   - InducedSubgraph: O(n + Σ deg(kept)).
package core
