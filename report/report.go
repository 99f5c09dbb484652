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

// Package report renders benchmark results as the plain-text timing table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ajroetker/go-sortbench/bench"
)

// DefaultPath is where the report is written unless configured otherwise.
const DefaultPath = "output/sortResults.txt"

const (
	title     = "SORTING RESULTS"
	underline = "---------------"
	unit      = "ms"
)

// Format writes the results table to w:
//
//	SORTING RESULTS
//	---------------
//	                         Run 1          Run 2          Run 3        Average
//	Selection Sort            912ms          905ms          899ms        905.0ms
//
// Labels are left-justified to 15 columns, headers right-justified to 15,
// times right-justified to 13 followed by "ms". The table ends with a blank
// line.
func Format(w io.Writer, res *bench.Results) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, underline)

	fmt.Fprintf(bw, "%-15s", "")
	for trial := range res.Trials {
		fmt.Fprintf(bw, "%15s", fmt.Sprintf("Run %d", trial+1))
	}
	fmt.Fprintf(bw, "%15s\n", "Average")

	for i, alg := range res.Algorithms {
		fmt.Fprintf(bw, "%-15s", alg.String())
		for _, ms := range res.Millis[i] {
			fmt.Fprintf(bw, "%13d%s", ms, unit)
		}
		fmt.Fprintf(bw, "%13.1f%s\n", bench.Average(res.Millis[i]), unit)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// Write formats res into the file at path, creating parent directories.
// The caller decides whether a failure matters; the results are unaffected.
func Write(path string, res *bench.Results) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", cerr)
		}
	}()

	if err := Format(f, res); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
