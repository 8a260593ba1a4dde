// SPDX-License-Identifier: MIT
// Package: misopt/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j > i asc; one Float64 per trial.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misopt/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse samples each unordered pair {i,j} independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b, err := core.NewBuilder(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = b.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return b.Build(), nil
	}
}
