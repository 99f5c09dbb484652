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
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortbench/config"
	"github.com/ajroetker/go-sortbench/history"
	"github.com/ajroetker/go-sortbench/report"
	"github.com/ajroetker/go-sortbench/sorts"
)

var historyLimit int

// historyCmd lists recorded runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List benchmark runs recorded with --history",
	Long: `Lists runs from the history database, newest first, with the average
time per algorithm.

Example:
  sortbench history --limit 5
  sortbench history show 3f2a9c1e`,
	Args: cobra.NoArgs,
	RunE: listHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Print the report table of one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  showHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum runs to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
}

func openHistory() (*history.Store, error) {
	path := cfg.History.Path
	if path == "" {
		path = history.DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no history at %s (run with --history first): %w", path, err)
	}
	return history.Open(path, logger)
}

func listHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}
	return writeRunTable(out, runs)
}

func writeRunTable(out io.Writer, runs []*history.Run) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := []string{"ID", "WHEN", "SIZE", "TRIALS", "MODE"}
	for _, alg := range sorts.All() {
		header = append(header, strings.ToUpper(alg.Key()))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, run := range runs {
		mode := "sequential"
		if run.Parallel {
			mode = "parallel"
		}
		row := []string{
			run.ID[:8],
			humanize.Time(run.StartedAt),
			humanize.Comma(int64(run.Size)),
			fmt.Sprint(run.Trials),
			mode,
		}
		for _, alg := range sorts.All() {
			if _, ok := run.Timings[alg]; !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.1fms", run.Average(alg)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func showHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s (%s, %s values, %s)\n\n", run.ID,
		run.StartedAt.Local().Format("2006-01-02 15:04:05"),
		humanize.Comma(int64(run.Size)), run.Env.GOARCH)
	return report.Format(out, run.Results())
}

var configForce bool

// configCmd groups config file helpers. Its subcommands must work while the
// config file is broken, so they skip the root setup.
var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Manage the sortbench config file",
	PersistentPreRunE: setupLogging,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  initConfig,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
