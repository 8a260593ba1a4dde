// SPDX-License-Identifier: MIT

package race

import (
	"context"

	"github.com/katalvlaran/misopt/anneal"
	"github.com/katalvlaran/misopt/brkga"
	"github.com/katalvlaran/misopt/core"
	"github.com/katalvlaran/misopt/greedy"
)

// BRKGA runs a brkga.Engine built from opts when the race starts.
// Improvements are reported as they happen; any OnImprove already set in
// opts is still called.
func BRKGA(name string, g *core.Graph, opts brkga.Options) Worker {
	return WorkerFunc{ID: name, Fn: func(ctx context.Context, report func(int)) error {
		next := opts.OnImprove
		o := opts
		o.OnImprove = func(ev brkga.Improvement) {
			report(ev.Fitness)
			if next != nil {
				next(ev)
			}
		}
		eng, err := brkga.New(g, o)
		if err != nil {
			return err
		}
		_, err = eng.Run(ctx)
		return err
	}}
}

// Anneal runs an anneal.Annealer built from opts when the race starts.
func Anneal(name string, g *core.Graph, opts anneal.Options) Worker {
	return WorkerFunc{ID: name, Fn: func(ctx context.Context, report func(int)) error {
		next := opts.OnImprove
		o := opts
		o.OnImprove = func(ev anneal.Improvement) {
			report(ev.Fitness)
			if next != nil {
				next(ev)
			}
		}
		a, err := anneal.New(g, o)
		if err != nil {
			return err
		}
		_, err = a.Run(ctx)
		return err
	}}
}

// Greedy reports the static-degree greedy set once and returns.
func Greedy(name string, g *core.Graph) Worker {
	return WorkerFunc{ID: name, Fn: func(_ context.Context, report func(int)) error {
		report(len(greedy.Deterministic(g)))
		return nil
	}}
}
