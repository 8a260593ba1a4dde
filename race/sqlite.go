// SPDX-License-Identifier: MIT

package race

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	workers    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id     TEXT    NOT NULL,
	seq        INTEGER NOT NULL,
	worker     TEXT    NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	fitness    INTEGER NOT NULL,
	final      INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, seq, worker)
);`

// SQLiteSink stores samples in an SQLite database, one row per worker
// per sample. Several runs may share a database; rows are keyed by run id.
type SQLiteSink struct {
	db    *sql.DB
	runID string
}

// OpenSQLite opens (creating if needed) the database at path.
// ":memory:" is accepted.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	// a single connection keeps ":memory:" databases alive across calls
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite: schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Begin records the run.
func (s *SQLiteSink) Begin(runID string, workers []string) error {
	if s.runID != "" {
		return ErrSinkAlreadyUsed
	}
	_, err := s.db.Exec(`INSERT INTO runs (run_id, started_at, workers) VALUES (?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339Nano), strings.Join(workers, ","))
	if err != nil {
		return fmt.Errorf("SQLiteSink.Begin: %w", err)
	}
	s.runID = runID

	return nil
}

// Write inserts one row per reported worker in a single transaction.
func (s *SQLiteSink) Write(smp Sample) error {
	if s.runID == "" {
		return ErrSinkNotBegun
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("SQLiteSink.Write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO samples (run_id, seq, worker, elapsed_ms, fitness, final) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("SQLiteSink.Write: %w", err)
	}
	defer stmt.Close()

	for worker, fit := range smp.Fitness {
		if _, err = stmt.Exec(s.runID, smp.Seq, worker, smp.Elapsed.Milliseconds(), fit, smp.Final); err != nil {
			return fmt.Errorf("SQLiteSink.Write: seq %d %s: %w", smp.Seq, worker, err)
		}
	}

	return tx.Commit()
}

// Best returns the highest fitness stored per worker for runID.
func (s *SQLiteSink) Best(ctx context.Context, runID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT worker, MAX(fitness) FROM samples WHERE run_id = ? GROUP BY worker`, runID)
	if err != nil {
		return nil, fmt.Errorf("SQLiteSink.Best: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	var (
		worker string
		fit    int
	)
	for rows.Next() {
		if err = rows.Scan(&worker, &fit); err != nil {
			return nil, fmt.Errorf("SQLiteSink.Best: %w", err)
		}
		out[worker] = fit
	}

	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteSink) Close() error { return s.db.Close() }
