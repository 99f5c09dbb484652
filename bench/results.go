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
	"fmt"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/sorts"
)

// Result is the elapsed time of one algorithm in one trial.
type Result struct {
	Algorithm sorts.Algorithm
	// Trial is zero-based.
	Trial   int
	Elapsed time.Duration
}

// Millis returns Elapsed truncated to whole milliseconds.
func (r Result) Millis() int64 {
	return Millis(r.Elapsed)
}

// Results holds per-trial millisecond timings indexed [algorithm][trial],
// with algorithms in the order of Algorithms.
type Results struct {
	Algorithms []sorts.Algorithm
	Trials     int
	Millis     [][]int64
}

// NewResults allocates an empty matrix for algs × trials.
func NewResults(algs []sorts.Algorithm, trials int) *Results {
	r := &Results{
		Algorithms: slices.Clone(algs),
		Trials:     trials,
		Millis:     make([][]int64, len(algs)),
	}
	for i := range r.Millis {
		r.Millis[i] = make([]int64, trials)
	}
	return r
}

func (r *Results) row(alg sorts.Algorithm) (int, error) {
	i := slices.Index(r.Algorithms, alg)
	if i < 0 {
		return 0, fmt.Errorf("%w: %v not in results", sorts.ErrUnknownAlgorithm, alg)
	}
	return i, nil
}

// Record stores res in the matrix.
func (r *Results) Record(res Result) error {
	i, err := r.row(res.Algorithm)
	if err != nil {
		return err
	}
	if res.Trial < 0 || res.Trial >= r.Trials {
		return fmt.Errorf("trial %d out of range [0, %d)", res.Trial, r.Trials)
	}
	r.Millis[i][res.Trial] = res.Millis()
	return nil
}

// Times returns the per-trial milliseconds recorded for alg.
func (r *Results) Times(alg sorts.Algorithm) []int64 {
	i, err := r.row(alg)
	if err != nil {
		return nil
	}
	return r.Millis[i]
}

// Average returns the mean of alg's trial times. The sum is divided as an
// integer before conversion, so 10+12+12 averages to 11.0.
func (r *Results) Average(alg sorts.Algorithm) float64 {
	return Average(r.Times(alg))
}

// Average returns float64(sum(times) / len(times)) using integer division.
func Average(times []int64) float64 {
	if len(times) == 0 {
		return 0
	}
	var sum int64
	for _, t := range times {
		sum += t
	}
	return float64(sum / int64(len(times)))
}
