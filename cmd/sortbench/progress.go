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
	"io"
	"time"

	"gopkg.in/cheggaaa/pb.v1"

	"github.com/ajroetker/go-sortbench/bench"
)

// ProgressMeter draws a progress bar over all sorts of a run. It implements
// bench.Observer.
type ProgressMeter struct {
	bar      *pb.ProgressBar
	finished bool
	prefix   string
	out      io.Writer
}

func newProgress(prefix string, out io.Writer) *ProgressMeter {
	return &ProgressMeter{
		prefix: prefix,
		out:    out,
	}
}

// Start begins drawing a bar for total sorts.
func (pm *ProgressMeter) Start(total int) {
	pm.bar = pb.New(total)
	pm.bar.Prefix(pm.prefix)
	pm.bar.SetMaxWidth(70)
	pm.bar.SetRefreshRate(200 * time.Millisecond)
	pm.bar.ShowTimeLeft = false
	pm.bar.Output = pm.out
	pm.bar.Start()
}

// TrialStarted implements bench.Observer.
func (pm *ProgressMeter) TrialStarted(int) {}

// SortFinished implements bench.Observer.
func (pm *ProgressMeter) SortFinished(bench.Result) {
	if pm.bar != nil {
		pm.bar.Increment()
	}
}

// TrialValidated implements bench.Observer.
func (pm *ProgressMeter) TrialValidated(int) {}

// Finish stops the bar. It is safe to call more than once.
func (pm *ProgressMeter) Finish() {
	if pm.finished || pm.bar == nil {
		return
	}
	pm.bar.Finish()
	pm.finished = true
}
