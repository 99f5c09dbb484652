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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/sorts"
)

// Console prints run progress the way the interactive tool narrates it.
// It implements bench.Observer.
type Console struct {
	w    io.Writer
	size int
	ok   func(a ...interface{}) string
	bad  func(a ...interface{}) string
}

var _ bench.Observer = (*Console)(nil)

// NewConsole returns a Console writing to w for runs of size elements.
func NewConsole(w io.Writer, size int) *Console {
	return &Console{
		w:    w,
		size: size,
		ok:   color.New(color.FgGreen).SprintFunc(),
		bad:  color.New(color.FgRed, color.Bold).SprintFunc(),
	}
}

// TrialStarted implements bench.Observer.
func (c *Console) TrialStarted(trial int) {
	fmt.Fprintf(c.w, "Starting Sort #%d... (%s integers)\n", trial+1, humanize.Comma(int64(c.size)))
}

// SortFinished implements bench.Observer.
func (c *Console) SortFinished(res bench.Result) {
	fmt.Fprintf(c.w, "\t%s time %d\n", res.Algorithm, res.Millis())
}

// TrialValidated implements bench.Observer.
func (c *Console) TrialValidated(int) {
	fmt.Fprintf(c.w, "\t  %s\n", c.ok("Sorts validated"))
}

// ValidationFailed prints the fatal message for a sort left out of order.
func (c *Console) ValidationFailed(err *sorts.ValidationError) {
	fmt.Fprintln(c.w, c.bad(fmt.Sprintf(
		"ERROR: The list performed by the %s algorithm was not sorted correctly.", err.Algorithm)))
}

// Written announces the report location.
func (c *Console) Written(path string) {
	fmt.Fprintf(c.w, "\nReport is complete -- located in file: %s\n\n", path)
}

// WriteFailed warns that the report could not be written.
func (c *Console) WriteFailed(path string) {
	fmt.Fprintln(c.w, color.YellowString("The file %s could not be opened.", path))
}

// Summary prints one line per algorithm with its average and marks the
// fastest.
func (c *Console) Summary(res *bench.Results) {
	best := -1
	for i := range res.Algorithms {
		if best < 0 || bench.Average(res.Millis[i]) < bench.Average(res.Millis[best]) {
			best = i
		}
	}
	for i, alg := range res.Algorithms {
		line := fmt.Sprintf("  %-15s avg %.1fms", alg, bench.Average(res.Millis[i]))
		if i == best {
			line = c.ok(line + "  (fastest)")
		}
		fmt.Fprintln(c.w, line)
	}
}
