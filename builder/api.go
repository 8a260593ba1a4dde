// SPDX-License-Identifier: MIT
// Package: misopt/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, con). Resolves cfg, runs con, wraps errors.
//   - Topologies live in impl_*.go, each returning a Constructor.
//   - Determinism: same constructor, options and seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/misopt/core"
)

// Constructor produces a graph from the resolved configuration.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// BuildGraph resolves bopts and runs con.
//
// Errors are wrapped as "BuildGraph: %w"; branch with errors.Is against
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
func BuildGraph(bopts []BuilderOption, con Constructor) (*core.Graph, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	g, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose parameters are known valid.
// It panics on error and is intended for tests and examples.
func MustBuild(con Constructor, bopts ...BuilderOption) *core.Graph {
	g, err := BuildGraph(bopts, con)
	if err != nil {
		panic(err)
	}

	return g
}
