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

// Command sortbench times selection sort, shell sort and quicksort over
// random integer data, verifies every result and writes a timing report.
//
// Usage:
//
//	sortbench                          # 3 trials × 50,000 values
//	sortbench --trials 5 --parallel    # algorithms of a trial run side by side
//	sortbench --history                # also record the run in SQLite
//	sortbench history                  # list recorded runs
//	sortbench config init              # write sortbench.yaml with defaults
//
// Exit status is 2 when a sort leaves its data out of order and 1 for any
// other failure. A report that cannot be written is only a warning.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ajroetker/go-sortbench/config"
)

// Exit codes.
const (
	ExitError      = 1
	ExitValidation = 2
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Populated by PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// rootCmd runs the benchmark
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark selection, shell and quick sort on random integers",
	Long: `sortbench generates a random dataset per trial, sorts an identical copy
with each algorithm, verifies the output order and reports the elapsed
milliseconds per trial together with the average.

The report is written to output/sortResults.txt unless --output or the
config file says otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML)")

	addRunFlags(rootCmd.Flags())

	rootCmd.AddCommand(historyCmd, configCmd)
}

// addRunFlags registers the benchmark flags on f.
func addRunFlags(f *pflag.FlagSet) {
	f.Int("size", 0, "Values per dataset (default from config: 50000)")
	f.Int("trials", 0, "Number of trials (default from config: 3)")
	f.Int("max-value", 0, "Generate values in [0, max-value) (default from config: 100000)")
	f.Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	f.Bool("parallel", false, "Run the algorithms of each trial concurrently")
	f.StringSlice("algorithms", nil, "Algorithms to run: selection, shell, quick")
	f.StringP("output", "o", "", "Report file path")
	f.String("history", "", "Record the run in this SQLite database")
	f.Lookup("history").NoOptDefVal = "-"
	f.Bool("progress", false, "Show a progress bar on stderr")
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = cfg.Logging.Build(verbose)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("path", configPath), zap.Any("config", cfg))
	return nil
}

// setupLogging builds the logger from the default logging settings without
// reading the config file.
func setupLogging(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = config.DefaultConfig().Logging.Build(verbose)
	return err
}

// applyFlags copies explicitly set flags over c. Flags not registered on f
// are ignored.
func applyFlags(f *pflag.FlagSet, c *config.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}
	set("size", func() (e error) { c.Size, e = f.GetInt("size"); return })
	set("trials", func() (e error) { c.Trials, e = f.GetInt("trials"); return })
	set("max-value", func() (e error) { c.MaxValue, e = f.GetInt("max-value"); return })
	set("seed", func() (e error) { c.Seed, e = f.GetUint64("seed"); return })
	set("parallel", func() (e error) { c.Parallel, e = f.GetBool("parallel"); return })
	set("algorithms", func() (e error) { c.Algorithms, e = f.GetStringSlice("algorithms"); return })
	set("output", func() (e error) { c.Output, e = f.GetString("output"); return })
	set("history", func() error {
		path, e := f.GetString("history")
		if e != nil {
			return e
		}
		c.History.Enabled = true
		if path != "-" {
			c.History.Path = path
		}
		return nil
	})
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	code := ExitError
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}
