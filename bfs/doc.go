// SPDX-License-Identifier: MIT

// Package bfs splits vertex subsets of a core.Graph into connected
// components by breadth-first search.
//
// What
//
//   - Components partitions a vertex subset into the connected components
//     of the subgraph it induces. One walker serves every start vertex, so
//     the visited marks are allocated once per call.
//
// Why
//
//   - The independence number of a graph is the sum over its components, so
//     exact search on a fragmented subset can solve each part on its own.
//
// Determinism
//
//	core.Graph keeps neighbor lists sorted and start vertices are taken in
//	ascending order, so component order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeued vertex.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if subset names a vertex outside the graph.
//   - ctx.Err() on cancellation.
package bfs
