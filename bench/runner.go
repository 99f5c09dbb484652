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

package bench

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// Defaults used when the surrounding program does not override them.
const (
	DefaultSize     = 50000
	DefaultTrials   = 3
	DefaultMaxValue = 100000
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// Config controls a benchmark run.
type Config struct {
	// Size is the number of elements sorted per algorithm per trial.
	Size int
	// Trials is the number of independent datasets.
	Trials int
	// MaxValue bounds generated values to [0, MaxValue).
	MaxValue int
	// Algorithms run in this order; nil means sorts.All().
	Algorithms []sorts.Algorithm
	// Parallel runs the algorithms of a trial on separate workers.
	Parallel bool
}

// DefaultConfig returns the stock 3 × 50,000 configuration.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Trials:     DefaultTrials,
		MaxValue:   DefaultMaxValue,
		Algorithms: sorts.All(),
	}
}

// Validate checks c for values the runner cannot use.
func (c Config) Validate() error {
	switch {
	case c.Size < 0:
		return fmt.Errorf("%w: size %d is negative", ErrInvalidConfig, c.Size)
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidConfig, c.Trials)
	case c.MaxValue < 1:
		return fmt.Errorf("%w: max value must be at least 1, got %d", ErrInvalidConfig, c.MaxValue)
	}
	for _, a := range c.Algorithms {
		if !a.Valid() {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, a.Sort(nil))
		}
	}
	return nil
}

// Observer receives run events in order. Calls never overlap.
type Observer interface {
	TrialStarted(trial int)
	SortFinished(res Result)
	TrialValidated(trial int)
}

type nopObserver struct{}

func (nopObserver) TrialStarted(int) {}
func (nopObserver) SortFinished(Result) {}
func (nopObserver) TrialValidated(int) {}

// Runner executes the trial loop.
type Runner struct {
	cfg   Config
	src   Source
	clock Clock
	log   *zap.Logger
	obs   Observer
	pool  *workerpool.Pool
	sort  func(sorts.Algorithm, []int) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the timing source.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithObserver registers o for run events.
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.obs = o }
}

// NewRunner validates cfg and returns a Runner drawing data from src.
// Call Close when done to release the worker pool of a parallel run.
func NewRunner(cfg Config, src Source, opts ...Option) (*Runner, error) {
	if cfg.Algorithms == nil {
		cfg.Algorithms = sorts.All()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	r := &Runner{
		cfg:   cfg,
		src:   src,
		clock: WallClock,
		log:   zap.NewNop(),
		obs:   nopObserver{},
		sort:  sorts.Algorithm.Sort,
	}
	for _, opt := range opts {
		opt(r)
	}
	if cfg.Parallel {
		r.pool = workerpool.New(len(cfg.Algorithms))
	}
	return r, nil
}

// Close releases the worker pool, if any.
func (r *Runner) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Run executes every trial and returns the timing matrix. A sort that
// leaves its sequence out of order stops the run with an error wrapping
// *sorts.ValidationError. ctx is checked between sorts; a sort in progress
// always runs to completion.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	algs := r.cfg.Algorithms
	results := NewResults(algs, r.cfg.Trials)

	r.log.Info("benchmark starting",
		zap.Int("size", r.cfg.Size),
		zap.Int("trials", r.cfg.Trials),
		zap.Int("max_value", r.cfg.MaxValue),
		zap.Bool("parallel", r.cfg.Parallel),
		envField(DetectEnvironment()))

	for trial := range r.cfg.Trials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.obs.TrialStarted(trial)

		data := Generate(r.src, r.cfg.Size, r.cfg.MaxValue)
		copies := Replicate(data, len(algs))

		if err := r.runTrial(ctx, trial, copies, results); err != nil {
			return nil, err
		}
		r.obs.TrialValidated(trial)
	}

	r.log.Info("benchmark finished")
	return results, nil
}

// runTrial sorts one copy per algorithm and records the timings. Sequential
// runs report each sort as soon as it is verified; parallel runs report them
// in algorithm order once every worker is done.
func (r *Runner) runTrial(ctx context.Context, trial int, copies [][]int, results *Results) error {
	algs := r.cfg.Algorithms

	if r.pool != nil {
		out := make([]Result, len(algs))
		err := r.pool.ForEach(len(algs), func(i int) error {
			res, err := r.sortOne(trial, algs[i], copies[i])
			out[i] = res
			return err
		})
		if err != nil {
			return err
		}
		for _, res := range out {
			if err := r.finish(results, res); err != nil {
				return err
			}
		}
		return nil
	}

	for i, alg := range algs {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.sortOne(trial, alg, copies[i])
		if err != nil {
			return err
		}
		if err := r.finish(results, res); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) finish(results *Results, res Result) error {
	if err := results.Record(res); err != nil {
		return err
	}
	r.obs.SortFinished(res)
	return nil
}

// sortOne times a single sort and verifies its output.
func (r *Runner) sortOne(trial int, alg sorts.Algorithm, data []int) (Result, error) {
	start := r.clock.Now()
	if err := r.sort(alg, data); err != nil {
		return Result{}, err
	}
	elapsed := r.clock.Now().Sub(start)

	res := Result{Algorithm: alg, Trial: trial, Elapsed: elapsed}
	if err := sorts.Verify(data, alg.String()); err != nil {
		r.log.Error("sort validation failed",
			zap.String("algorithm", alg.String()),
			zap.Int("trial", trial+1),
			zap.Error(err))
		return res, fmt.Errorf("trial %d: %w", trial+1, err)
	}

	r.log.Debug("sort finished",
		zap.String("algorithm", alg.String()),
		zap.Int("trial", trial+1),
		zap.Int64("ms", res.Millis()),
		zap.Duration("elapsed", elapsed))
	return res, nil
}
