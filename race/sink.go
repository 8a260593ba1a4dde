// SPDX-License-Identifier: MIT

package race

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// CSVSink writes one row per sample: elapsed seconds, then each worker's
// best fitness in race order (empty until the worker reports).
// Every row is flushed as it is written.
type CSVSink struct {
	w       *csv.Writer
	workers []string
}

// NewCSVSink writes to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

// Begin writes the header row.
func (s *CSVSink) Begin(_ string, workers []string) error {
	if s.workers != nil {
		return ErrSinkAlreadyUsed
	}
	s.workers = append([]string(nil), workers...)
	header := make([]string, 0, len(workers)+1)
	header = append(header, "elapsed_seconds")
	header = append(header, workers...)

	return s.flush(header)
}

// Write appends one row.
func (s *CSVSink) Write(smp Sample) error {
	if s.workers == nil {
		return ErrSinkNotBegun
	}
	for name := range smp.Fitness {
		if !slices.Contains(s.workers, name) {
			return fmt.Errorf("CSVSink.Write: %q: %w", name, ErrUnknownWorker)
		}
	}
	row := make([]string, 1, len(s.workers)+1)
	row[0] = strconv.FormatFloat(smp.Elapsed.Seconds(), 'f', 3, 64)
	for _, name := range s.workers {
		if fit, ok := smp.Fitness[name]; ok {
			row = append(row, strconv.Itoa(fit))
		} else {
			row = append(row, "")
		}
	}

	return s.flush(row)
}

func (s *CSVSink) flush(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// MultiSink forwards to every sink in order and joins their errors.
type MultiSink []Sink

// Begin implements Sink.
func (m MultiSink) Begin(runID string, workers []string) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Begin(runID, workers))
	}
	return errors.Join(errs...)
}

// Write implements Sink.
func (m MultiSink) Write(smp Sample) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Write(smp))
	}
	return errors.Join(errs...)
}
