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
	"math/rand/v2"
	"time"
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. A zero seed is replaced by one
// derived from the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns n values drawn from src in [0, maxValue).
func Generate(src Source, n, maxValue int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = src.IntN(maxValue)
	}
	return data
}

// Replicate returns copies independent copies of data.
func Replicate(data []int, copies int) [][]int {
	out := make([][]int, copies)
	for i := range out {
		out[i] = make([]int, len(data))
		copy(out[i], data)
	}
	return out
}

// Clock is the timing source used around each sort.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (wallClock) Now() time.Time { return time.Now() }

// WallClock is the default Clock.
var WallClock Clock = wallClock{}

// Millis truncates d to whole milliseconds.
func Millis(d time.Duration) int64 {
	return d.Nanoseconds() / int64(time.Millisecond)
}
