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

package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/config"
	"github.com/ajroetker/go-sortbench/history"
	"github.com/ajroetker/go-sortbench/report"
	"github.com/ajroetker/go-sortbench/sorts"
)

func runBenchmark(cmd *cobra.Command, args []string) error {
	showProgress, _ := cmd.Flags().GetBool("progress")
	return runWith(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), showProgress)
}

// runWith runs the benchmark described by c, narrating to out.
func runWith(ctx context.Context, c *config.Config, out, errOut io.Writer, showProgress bool) error {
	bc, err := c.Bench()
	if err != nil {
		return err
	}

	console := report.NewConsole(out, bc.Size)
	observers := multiObserver{console}
	if showProgress {
		pm := newProgress("Sorting ", errOut)
		pm.Start(bc.Trials * len(bc.Algorithms))
		defer pm.Finish()
		observers = append(observers, pm)
	}

	runner, err := bench.NewRunner(bc, bench.NewSource(c.Seed),
		bench.WithLogger(logger),
		bench.WithObserver(observers))
	if err != nil {
		return err
	}
	defer runner.Close()

	startedAt := time.Now()
	res, err := runner.Run(ctx)
	if err != nil {
		var verr *sorts.ValidationError
		if errors.As(err, &verr) {
			console.ValidationFailed(verr)
			return &exitError{code: ExitValidation, err: err}
		}
		return err
	}
	console.Summary(res)

	reportErr, historyErr := writeSinks(ctx, c, runner.Config(), res, startedAt)
	if reportErr != nil {
		logger.Warn("report not written", zap.String("path", c.Output), zap.Error(reportErr))
		console.WriteFailed(c.Output)
	} else {
		console.Written(c.Output)
	}
	if historyErr != nil {
		logger.Warn("run not recorded", zap.String("path", c.History.Path), zap.Error(historyErr))
	}
	return nil
}

// writeSinks writes the report file and, if enabled, the history record.
// Neither failure affects the completed run, so both are returned for the
// caller to report.
func writeSinks(ctx context.Context, c *config.Config, bc bench.Config, res *bench.Results, startedAt time.Time) (reportErr, historyErr error) {
	var g errgroup.Group

	g.Go(func() error {
		reportErr = report.Write(c.Output, res)
		return nil
	})

	if c.History.Enabled {
		g.Go(func() error {
			historyErr = recordRun(ctx, c.History.Path, history.NewRun(bc, res, startedAt))
			return nil
		})
	}

	_ = g.Wait()
	return reportErr, historyErr
}

func recordRun(ctx context.Context, path string, run *history.Run) error {
	store, err := history.Open(path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Record(ctx, run); err != nil {
		return err
	}
	logger.Info("run recorded", zap.String("id", run.ID), zap.String("db", store.Path()))
	return nil
}

// multiObserver fans run events out to several observers.
type multiObserver []bench.Observer

func (m multiObserver) TrialStarted(trial int) {
	for _, o := range m {
		o.TrialStarted(trial)
	}
}

func (m multiObserver) SortFinished(res bench.Result) {
	for _, o := range m {
		o.SortFinished(res)
	}
}

func (m multiObserver) TrialValidated(trial int) {
	for _, o := range m {
		o.TrialValidated(trial)
	}
}
