// SPDX-License-Identifier: MIT
// Package: misopt/builder
//
// impl_classic.go - deterministic textbook topologies.
//
// Every constructor here ignores cfg.rng and emits edges in a fixed order,
// so the resulting graphs are identical across runs. Vertex ids are 0..n-1.
//
// Known independence numbers (used as test oracles throughout the module):
//   - Empty(n):                n
//   - Complete(n):             1
//   - Path(n):                 ceil(n/2)
//   - Cycle(n), n≥3:           floor(n/2)
//   - Star(n), n≥2:            n-1 (all leaves)
//   - CompleteBipartite(a,b):  max(a,b)

package builder

import (
	"fmt"

	"github.com/katalvlaran/misopt/core"
)

const (
	methodEmpty     = "Empty"
	methodComplete  = "Complete"
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodBipartite = "CompleteBipartite"

	minCycleNodes = 3
	minStarNodes  = 2
)

// fromEdges is the shared tail of every constructor.
func fromEdges(method string, n int, edges [][2]int) (*core.Graph, error) {
	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return g, nil
}

// Empty returns n isolated vertices.
func Empty(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodEmpty, n, ErrTooFewVertices)
		}
		return fromEdges(methodEmpty, n, nil)
	}
}

// Complete returns K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}
		return fromEdges(methodComplete, n, edges)
	}
}

// Path returns P_n: 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodPath, n, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n)
		var i int
		for i = 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		return fromEdges(methodPath, n, edges)
	}
}

// Cycle returns C_n for n ≥ 3.
func Cycle(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n)
		var i int
		for i = 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + 1) % n})
		}
		return fromEdges(methodCycle, n, edges)
	}
}

// Star returns K_{1,n-1} with hub 0.
func Star(n int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n-1)
		var i int
		for i = 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}
		return fromEdges(methodStar, n, edges)
	}
}

// CompleteBipartite returns K_{a,b}; the left side is 0..a-1.
func CompleteBipartite(a, b int) Constructor {
	return func(builderConfig) (*core.Graph, error) {
		if a < 1 || b < 1 {
			return nil, fmt.Errorf("%s: a=%d b=%d: %w", methodBipartite, a, b, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, a*b)
		var i, j int
		for i = 0; i < a; i++ {
			for j = 0; j < b; j++ {
				edges = append(edges, [2]int{i, a + j})
			}
		}
		return fromEdges(methodBipartite, a+b, edges)
	}
}
