// SPDX-License-Identifier: MIT

package race

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Sentinel errors.
var (
	ErrBudget          = errors.New("race: time limit must be positive")
	ErrInterval        = errors.New("race: sample interval must be positive")
	ErrNoWorkers       = errors.New("race: at least one worker is required")
	ErrWorkerName      = errors.New("race: worker names must be non-empty and unique")
	ErrSink            = errors.New("race: sink failed")
	ErrUnknownWorker   = errors.New("race: sample names a worker outside the header")
	ErrSinkNotBegun    = errors.New("race: Write before Begin")
	ErrSinkAlreadyUsed = errors.New("race: Begin called twice")
)

// Worker is one optimizer taking part in a race. Run must return soon
// after ctx is done and call report with each new best fitness it finds.
// report is safe for concurrent use and ignores non-improving values.
type Worker interface {
	Name() string
	Run(ctx context.Context, report func(fitness int)) error
}

// WorkerFunc adapts a function to Worker.
type WorkerFunc struct {
	ID string
	Fn func(ctx context.Context, report func(int)) error
}

// Name implements Worker.
func (w WorkerFunc) Name() string { return w.ID }

// Run implements Worker.
func (w WorkerFunc) Run(ctx context.Context, report func(int)) error { return w.Fn(ctx, report) }

// Options configures a Runner.
type Options struct {
	// TimeLimit is the wall-clock budget shared by all workers.
	TimeLimit time.Duration
	// SampleInterval is the period between samples.
	SampleInterval time.Duration
	// RunID labels every sample; empty draws a random UUID.
	RunID string

	Sink    Sink
	Metrics *Metrics
	Logger  *slog.Logger
}

// DefaultOptions returns a 60s race sampled every 5s.
func DefaultOptions() Options {
	return Options{TimeLimit: time.Minute, SampleInterval: 5 * time.Second}
}

// Sample is a snapshot of every worker's best fitness. Workers that have
// not reported yet are absent from Fitness.
type Sample struct {
	RunID   string
	Seq     int
	Elapsed time.Duration
	Fitness map[string]int
	Final   bool
}

// Sink consumes the samples of one race.
type Sink interface {
	// Begin is called once, before the first Write, with the worker names in race order.
	Begin(runID string, workers []string) error
	Write(s Sample) error
}

// Standings is the outcome of a race.
type Standings struct {
	RunID   string
	Elapsed time.Duration
	// Final is the best fitness of every worker that reported one.
	Final map[string]int
	// Winners holds every worker tied at the top, in race order.
	Winners []string
	// Errors holds the non-cancellation error of each failed worker.
	Errors  map[string]error
	Samples int
}
