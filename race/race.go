// SPDX-License-Identifier: MIT

package race

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/misopt/internal/logging"
)

// Runner executes races with fixed Options.
type Runner struct {
	opts Options
	log  *slog.Logger
}

// New validates opts.
func New(opts Options) (*Runner, error) {
	if opts.TimeLimit <= 0 {
		return nil, fmt.Errorf("race.New: %v: %w", opts.TimeLimit, ErrBudget)
	}
	if opts.SampleInterval <= 0 {
		return nil, fmt.Errorf("race.New: %v: %w", opts.SampleInterval, ErrInterval)
	}
	r := &Runner{opts: opts, log: opts.Logger}
	if r.log == nil {
		r.log = logging.Discard()
	}

	return r, nil
}

// contestant is the shared, one-way channel from a worker to the sampler.
type contestant struct {
	name string
	best atomic.Int64
	err  error
}

func (c *contestant) report(fit int) {
	for {
		cur := c.best.Load()
		if int64(fit) <= cur {
			return
		}
		if c.best.CompareAndSwap(cur, int64(fit)) {
			return
		}
	}
}

// Run races workers until TimeLimit, until all of them return, or until
// ctx is done. The returned error is non-nil only for invalid input or a
// failing Sink; in the latter case the Standings are still complete.
func (r *Runner) Run(ctx context.Context, workers ...Worker) (Standings, error) {
	names, err := workerNames(workers)
	if err != nil {
		return Standings{}, err
	}
	runID := r.opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	st := &sampler{runner: r, runID: runID}
	if r.opts.Sink != nil {
		if err = r.opts.Sink.Begin(runID, names); err != nil {
			return Standings{}, fmt.Errorf("Run: begin: %w: %w", ErrSink, err)
		}
	}

	cs := make([]*contestant, len(workers))
	for i := range workers {
		cs[i] = &contestant{name: names[i]}
		cs[i].best.Store(-1)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.opts.TimeLimit)
	defer cancel()
	start := time.Now()
	r.log.Info("race started", slog.String("run_id", runID), slog.Any("workers", names),
		slog.Duration("time_limit", r.opts.TimeLimit))

	var eg errgroup.Group
	for i, w := range workers {
		w := w
		c := cs[i]
		eg.Go(func() error {
			err := w.Run(runCtx, c.report)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				c.err = err
				r.log.Warn("worker failed", slog.String("worker", c.name), slog.Any("error", err))
			}
			return nil
		})
	}
	done := make(chan struct{})
	go func() {
		_ = eg.Wait()
		close(done)
	}()

	ticker := time.NewTicker(r.opts.SampleInterval)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-runCtx.Done():
			break loop
		case <-done:
			break loop
		case <-ticker.C:
			st.take(cs, time.Since(start), false)
		}
	}
	cancel()
	<-done

	elapsed := time.Since(start)
	final := st.take(cs, elapsed, true)

	out := Standings{
		RunID:   runID,
		Elapsed: elapsed,
		Final:   final.Fitness,
		Errors:  make(map[string]error),
		Samples: st.seq,
	}
	top := -1
	for _, c := range cs {
		if c.err != nil {
			out.Errors[c.name] = c.err
		}
		if fit, ok := final.Fitness[c.name]; ok {
			switch {
			case fit > top:
				top, out.Winners = fit, []string{c.name}
			case fit == top:
				out.Winners = append(out.Winners, c.name)
			}
		}
	}
	r.log.Info("race finished", slog.String("run_id", runID), slog.Any("winners", out.Winners),
		slog.Int("fitness", top), slog.Duration("elapsed", elapsed))

	if st.sinkErr != nil {
		return out, fmt.Errorf("Run: %w: %w", ErrSink, st.sinkErr)
	}
	return out, nil
}

// sampler numbers samples and stops writing to the sink after its first error.
type sampler struct {
	runner  *Runner
	runID   string
	seq     int
	sinkErr error
}

func (s *sampler) take(cs []*contestant, elapsed time.Duration, final bool) Sample {
	smp := Sample{
		RunID:   s.runID,
		Seq:     s.seq,
		Elapsed: elapsed,
		Fitness: make(map[string]int, len(cs)),
		Final:   final,
	}
	s.seq++
	for _, c := range cs {
		if fit := c.best.Load(); fit >= 0 {
			smp.Fitness[c.name] = int(fit)
		}
	}
	if m := s.runner.opts.Metrics; m != nil {
		m.observe(smp)
	}
	if sink := s.runner.opts.Sink; sink != nil && s.sinkErr == nil {
		if err := sink.Write(smp); err != nil {
			s.sinkErr = err
			s.runner.log.Error("sample sink failed", slog.Int("seq", smp.Seq), slog.Any("error", err))
		}
	}
	s.runner.log.Debug("sample", slog.Int("seq", smp.Seq), slog.Duration("elapsed", elapsed),
		slog.Any("fitness", smp.Fitness))

	return smp
}

func workerNames(workers []Worker) ([]string, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	names := make([]string, len(workers))
	seen := make(map[string]bool, len(workers))
	for i, w := range workers {
		n := w.Name()
		if n == "" || seen[n] {
			return nil, fmt.Errorf("race: worker %d %q: %w", i, n, ErrWorkerName)
		}
		seen[n] = true
		names[i] = n
	}
	return names, nil
}
