// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package history keeps a SQLite log of completed benchmark runs.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/sorts"
)

// DefaultPath is the database location used when history is enabled without
// an explicit path.
const DefaultPath = "output/history.db"

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned by Get for an unknown run ID.
var ErrNotFound = errors.New("run not found")

// likeEscaper quotes LIKE wildcards for use with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Run is one recorded benchmark run.
type Run struct {
	ID        string
	StartedAt time.Time
	Size      int
	Trials    int
	MaxValue  int
	Parallel  bool
	Env       bench.Environment
	// Timings maps each algorithm to its per-trial milliseconds.
	Timings map[sorts.Algorithm][]int64
}

// Average returns the mean trial time for alg.
func (r *Run) Average(alg sorts.Algorithm) float64 {
	return bench.Average(r.Timings[alg])
}

// Results rebuilds the timing matrix in report order.
func (r *Run) Results() *bench.Results {
	var algs []sorts.Algorithm
	for _, alg := range sorts.All() {
		if _, ok := r.Timings[alg]; ok {
			algs = append(algs, alg)
		}
	}
	res := bench.NewResults(algs, r.Trials)
	for i, alg := range algs {
		copy(res.Millis[i], r.Timings[alg])
	}
	return res
}

// NewRun captures res and its configuration as a Run with a fresh ID.
func NewRun(cfg bench.Config, res *bench.Results, startedAt time.Time) *Run {
	run := &Run{
		ID:        uuid.New().String(),
		StartedAt: startedAt.UTC(),
		Size:      cfg.Size,
		Trials:    res.Trials,
		MaxValue:  cfg.MaxValue,
		Parallel:  cfg.Parallel,
		Env:       bench.DetectEnvironment(),
		Timings:   make(map[sorts.Algorithm][]int64, len(res.Algorithms)),
	}
	for i, alg := range res.Algorithms {
		run.Timings[alg] = append([]int64(nil), res.Millis[i]...)
	}
	return run
}

// Store is a SQLite-backed run history.
type Store struct {
	db     *sql.DB
	dbPath string
	log    *zap.Logger
}

// Open creates or opens the history database at path.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// One writer at a time; sqlite serializes anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: path, log: log}
	if err := s.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		size INTEGER NOT NULL,
		trials INTEGER NOT NULL,
		max_value INTEGER NOT NULL,
		parallel INTEGER NOT NULL,
		env_json TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);

	CREATE TABLE IF NOT EXISTS timings (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		algorithm TEXT NOT NULL,
		trial INTEGER NOT NULL,
		millis INTEGER NOT NULL,
		PRIMARY KEY (run_id, algorithm, trial)
	);`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Record inserts run and its timings in one transaction.
func (s *Store) Record(ctx context.Context, run *Run) (err error) {
	envJSON, err := json.Marshal(run.Env)
	if err != nil {
		return fmt.Errorf("failed to encode environment: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, size, trials, max_value, parallel, env_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(timeLayout), run.Size, run.Trials,
		run.MaxValue, boolToInt(run.Parallel), string(envJSON))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, alg := range sorts.All() {
		for trial, ms := range run.Timings[alg] {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO timings (run_id, algorithm, trial, millis) VALUES (?, ?, ?, ?)`,
				run.ID, alg.Key(), trial, ms); err != nil {
				return fmt.Errorf("failed to insert timing: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	s.log.Debug("run recorded", zap.String("id", run.ID), zap.String("db", s.dbPath))
	return nil
}

// List returns up to limit runs, newest first. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	query := `SELECT id, started_at, size, trials, max_value, parallel, env_json
		FROM runs ORDER BY started_at DESC, id`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	rows.Close()

	for _, run := range runs {
		if err := s.loadTimings(ctx, run); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// Get returns the run with the given ID, or a prefix of it.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, size, trials, max_value, parallel, env_json
		 FROM runs WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY started_at DESC LIMIT 1`,
		id, likeEscaper.Replace(id)+"%")
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadTimings(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run       Run
		startedAt string
		envJSON   string
	)
	var parallel int
	err := sc.Scan(&run.ID, &startedAt, &run.Size, &run.Trials, &run.MaxValue, &parallel, &envJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return nil, fmt.Errorf("failed to parse run time %q: %w", startedAt, err)
	}
	if err := json.Unmarshal([]byte(envJSON), &run.Env); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}
	run.Parallel = parallel != 0
	run.Timings = make(map[sorts.Algorithm][]int64)
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Store) loadTimings(ctx context.Context, run *Run) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT algorithm, trial, millis FROM timings WHERE run_id = ? ORDER BY algorithm, trial`,
		run.ID)
	if err != nil {
		return fmt.Errorf("failed to query timings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			trial int
			ms    int64
		)
		if err := rows.Scan(&key, &trial, &ms); err != nil {
			return fmt.Errorf("failed to scan timing: %w", err)
		}
		alg, err := sorts.ParseAlgorithm(key)
		if err != nil {
			s.log.Warn("skipping timing for unknown algorithm", zap.String("algorithm", key))
			continue
		}
		times := run.Timings[alg]
		for len(times) <= trial {
			times = append(times, 0)
		}
		times[trial] = ms
		run.Timings[alg] = times
	}
	return rows.Err()
}
