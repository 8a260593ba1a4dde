// SPDX-License-Identifier: MIT

// Package race runs several anytime optimizers side by side on the same
// instance and records how their best fitness evolves over wall-clock time.
//
// Each Worker receives a report callback. Reports are folded into a
// per-worker atomic maximum, so a worker never reads another worker's
// state and the sampler never blocks a worker. Every SampleInterval the
// runner snapshots all maxima into a Sample and hands it to the Sink and
// the Metrics. When TimeLimit elapses (or every worker returns) the shared
// context is cancelled, the workers are joined and one final sample is
// written; that sample is also the Standings.
//
// Worker errors are kept in Standings.Errors and never stop the other
// workers. Cancellation of the caller's context ends the race early and
// is not an error.
//
// Sinks:
//
//	CSVSink     elapsed_seconds,<worker...> rows
//	SQLiteSink  samples(run_id, worker, elapsed_ms, fitness) via modernc.org/sqlite
//	MultiSink   fan-out
package race
