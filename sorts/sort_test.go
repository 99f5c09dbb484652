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

package sorts

import (
	"math/rand"
	"slices"
	"testing"
)

var sortFuncs = []struct {
	name string
	fn   func([]int)
}{
	{"Selection", SelectionSort},
	{"Shell", ShellSort},
	{"Quick", QuickSort},
}

func randomInts(n, max int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(max)
	}
	return data
}

// TestSortEmpty tests sorting empty and nil slices
func TestSortEmpty(t *testing.T) {
	for _, s := range sortFuncs {
		var nilSlice []int
		s.fn(nilSlice)
		empty := []int{}
		s.fn(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", s.name)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, s := range sortFuncs {
		data := []int{1}
		s.fn(data)
		if data[0] != 1 {
			t.Errorf("%s([1]) = %v, want [1]", s.name, data)
		}
	}
}

// TestSortSingleNoComparisons checks that the one-element base cases return
// before touching any element. Every index used here is out of range, so a
// comparison would panic.
func TestSortSingleNoComparisons(t *testing.T) {
	quickSort(nil, 0, 0)
	quickSort(nil, 5, 5)
	quickSort(nil, 3, 2)

	passes := 0
	data := []int{1}
	shellSort(data, func(int) { passes++ })
	if passes != 0 {
		t.Errorf("shellSort([1]) ran %d gap passes, want 0", passes)
	}
	if data[0] != 1 {
		t.Errorf("shellSort([1]) = %v, want [1]", data)
	}
}

// TestSortSmallExample tests the worked example with a duplicate
func TestSortSmallExample(t *testing.T) {
	want := []int{1, 3, 3, 5, 8}
	for _, s := range sortFuncs {
		data := []int{5, 3, 8, 3, 1}
		s.fn(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s([5 3 8 3 1]) = %v, want %v", s.name, data, want)
		}
	}
}

// TestSortPatterns tests sorted, reverse, all-equal and sawtooth input
func TestSortPatterns(t *testing.T) {
	patterns := map[string]func(n int) []int{
		"sorted": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = i
			}
			return data
		},
		"reverse": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = n - i
			}
			return data
		},
		"allSame": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = 7
			}
			return data
		},
		"sawtooth": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = i % 5
			}
			return data
		},
		"negative": func(n int) []int {
			data := make([]int, n)
			for i := range data {
				data[i] = -i * 3 % 11
			}
			return data
		},
	}
	for _, s := range sortFuncs {
		for name, gen := range patterns {
			for _, n := range []int{2, 3, 10, 257} {
				data := gen(n)
				want := slices.Clone(data)
				slices.Sort(want)
				s.fn(data)
				if !slices.Equal(data, want) {
					t.Errorf("%s(%s, n=%d) = %v, want %v", s.name, name, n, data, want)
				}
			}
		}
	}
}

// TestSortRandom checks order and permutation against slices.Sort
func TestSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 4096}
	for _, s := range sortFuncs {
		for _, n := range sizes {
			data := randomInts(n, 100000)
			want := slices.Clone(data)
			slices.Sort(want)
			s.fn(data)
			if !IsSorted(data) {
				t.Errorf("%s(random, n=%d) produced unsorted result", s.name, n)
			}
			if !slices.Equal(data, want) {
				t.Errorf("%s(random, n=%d) is not a permutation of its input", s.name, n)
			}
		}
	}
}

// TestSortFewDistinct exercises heavy duplication
func TestSortFewDistinct(t *testing.T) {
	for _, s := range sortFuncs {
		data := randomInts(2000, 4)
		want := slices.Clone(data)
		slices.Sort(want)
		s.fn(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s(fewDistinct) mismatch", s.name)
		}
	}
}

// TestSortIdempotent sorts twice and expects no change on the second pass
func TestSortIdempotent(t *testing.T) {
	for _, s := range sortFuncs {
		data := randomInts(500, 1000)
		s.fn(data)
		once := slices.Clone(data)
		s.fn(data)
		if !slices.Equal(data, once) {
			t.Errorf("%s changed an already sorted slice", s.name)
		}
	}
}

func TestShellSortGaps(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{1}},
		{4, []int{2, 1}},
		// 10/2 = 5, 5/2 = 2, then the 2 -> 1 override (same as 2/2).
		{10, []int{5, 2, 1}},
		{100, []int{50, 25, 12, 6, 3, 1}},
	}
	for _, tt := range tests {
		var gaps []int
		data := randomInts(tt.n, 100)
		shellSort(data, func(gap int) {
			if gap <= 0 {
				t.Fatalf("n=%d: pass run with gap %d", tt.n, gap)
			}
			gaps = append(gaps, gap)
		})
		if !slices.Equal(gaps, tt.want) {
			t.Errorf("n=%d: gaps = %v, want %v", tt.n, gaps, tt.want)
		}
		if !IsSorted(data) {
			t.Errorf("n=%d: shellSort produced unsorted result", tt.n)
		}
	}
}

func TestNextGap(t *testing.T) {
	// The 2 -> 1 rule agrees with integer halving; it is kept explicit.
	if got := nextGap(2); got != 1 {
		t.Errorf("nextGap(2) = %d, want 1", got)
	}
	if got := nextGap(1); got != 0 {
		t.Errorf("nextGap(1) = %d, want 0", got)
	}
	if got := nextGap(5); got != 2 {
		t.Errorf("nextGap(5) = %d, want 2", got)
	}
}

func TestQuickSortBaseCase(t *testing.T) {
	data := []int{3, 2, 1}
	quickSort(data, 1, 1)
	quickSort(data, 2, 1)
	quickSort(data, 0, -1)
	if !slices.Equal(data, []int{3, 2, 1}) {
		t.Errorf("quickSort on an empty or single range modified data: %v", data)
	}
}

func TestQuickSortSubrange(t *testing.T) {
	data := []int{9, 5, 4, 3, 2, 1, 0}
	quickSort(data, 1, 5)
	if want := []int{9, 1, 2, 3, 4, 5, 0}; !slices.Equal(data, want) {
		t.Errorf("quickSort(data, 1, 5) = %v, want %v", data, want)
	}
}

func TestMedianOfThree(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"ordered", []int{1, 0, 2, 0, 3}, []int{1, 0, 2, 0, 3}},
		{"reversed", []int{3, 0, 2, 0, 1}, []int{1, 0, 2, 0, 3}},
		{"allEqual", []int{4, 0, 4, 0, 4}, []int{4, 0, 4, 0, 4}},
		{"midSmallest", []int{2, 0, 1, 0, 3}, []int{1, 0, 2, 0, 3}},
		{"lastSmallest", []int{2, 0, 3, 0, 1}, []int{1, 0, 2, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.in)
			medianOfThree(data, 0, len(data)-1)
			if !slices.Equal(data, tt.want) {
				t.Errorf("medianOfThree(%v) = %v, want %v", tt.in, data, tt.want)
			}

			data = slices.Clone(tt.in)
			QuickSort(data)
			want := slices.Clone(tt.in)
			slices.Sort(want)
			if !slices.Equal(data, want) {
				t.Errorf("QuickSort(%v) = %v, want %v", tt.in, data, want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	for range 50 {
		data := randomInts(37, 20)
		p := partition(data, 0, len(data)-1)
		for i := 0; i < p; i++ {
			if data[i] > data[p] {
				t.Fatalf("data[%d]=%d > pivot %d at %d: %v", i, data[i], data[p], p, data)
			}
		}
		for i := p + 1; i < len(data); i++ {
			if data[i] <= data[p] {
				t.Fatalf("data[%d]=%d <= pivot %d at %d: %v", i, data[i], data[p], p, data)
			}
		}
	}
}

func TestSwap(t *testing.T) {
	data := []int{1, 2, 3}
	Swap(data, 0, 2)
	if !slices.Equal(data, []int{3, 2, 1}) {
		t.Errorf("Swap(0, 2) = %v", data)
	}
	Swap(data, 1, 1)
	if !slices.Equal(data, []int{3, 2, 1}) {
		t.Errorf("Swap(1, 1) = %v", data)
	}
}
