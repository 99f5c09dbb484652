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

package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/sorts"
)

func init() {
	color.NoColor = true
}

func sampleResults(t *testing.T) *bench.Results {
	t.Helper()
	res := bench.NewResults(sorts.All(), 3)
	times := map[sorts.Algorithm][]int64{
		sorts.Selection: {10, 12, 11},
		sorts.Shell:     {3, 4, 2},
		sorts.Quick:     {1, 0, 1},
	}
	for alg, ms := range times {
		for trial, v := range ms {
			require.NoError(t, res.Record(bench.Result{
				Algorithm: alg,
				Trial:     trial,
				Elapsed:   time.Duration(v) * time.Millisecond,
			}))
		}
	}
	return res
}

const wantReport = "SORTING RESULTS\n" +
	"---------------\n" +
	"                         Run 1          Run 2          Run 3        Average\n" +
	"Selection Sort            10ms           12ms           11ms         11.0ms\n" +
	"Shell Sort                 3ms            4ms            2ms          3.0ms\n" +
	"Quick Sort                 1ms            0ms            1ms          0.0ms\n" +
	"\n"

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, sampleResults(t)))
	assert.Equal(t, wantReport, buf.String())
}

func TestFormatTrialCount(t *testing.T) {
	res := bench.NewResults([]sorts.Algorithm{sorts.Quick}, 1)
	require.NoError(t, res.Record(bench.Result{Algorithm: sorts.Quick, Elapsed: 1234 * time.Millisecond}))

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, res))
	assert.Equal(t, "SORTING RESULTS\n"+
		"---------------\n"+
		"                         Run 1        Average\n"+
		"Quick Sort              1234ms       1234.0ms\n"+
		"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFormatWriteError(t *testing.T) {
	assert.Error(t, Format(failingWriter{}, sampleResults(t)))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "sortResults.txt")
	require.NoError(t, Write(path, sampleResults(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantReport, string(data))
}

func TestWriteUnopenable(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the directory should be.
	blocker := filepath.Join(dir, "output")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Write(filepath.Join(blocker, "sortResults.txt"), sampleResults(t))
	assert.Error(t, err)
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50000)

	c.TrialStarted(0)
	c.SortFinished(bench.Result{Algorithm: sorts.Shell, Elapsed: 15 * time.Millisecond})
	c.TrialValidated(0)
	c.ValidationFailed(&sorts.ValidationError{Algorithm: "Quick Sort"})
	c.Written("output/sortResults.txt")
	c.WriteFailed("/nope/sortResults.txt")

	assert.Equal(t, "Starting Sort #1... (50,000 integers)\n"+
		"\tShell Sort time 15\n"+
		"\t  Sorts validated\n"+
		"ERROR: The list performed by the Quick Sort algorithm was not sorted correctly.\n"+
		"\nReport is complete -- located in file: output/sortResults.txt\n\n"+
		"The file /nope/sortResults.txt could not be opened.\n", buf.String())
}

func TestConsoleSummary(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, 10).Summary(sampleResults(t))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "Selection Sort")
	assert.Contains(t, string(lines[2]), "Quick Sort")
	assert.Contains(t, string(lines[2]), "(fastest)")
	assert.NotContains(t, string(lines[0]), "(fastest)")
}
