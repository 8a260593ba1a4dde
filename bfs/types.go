// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned for subset ids outside the graph.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")
)

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds parameters for one traversal.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
