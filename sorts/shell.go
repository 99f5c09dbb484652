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

// ShellSort sorts data in place using gapped insertion sort. The gap starts
// at len(data)/2 and halves each round until a final pass with gap 1.
func ShellSort(data []int) {
	shellSort(data, nil)
}

// shellSort is ShellSort with an optional observer called once per gap,
// before the pass for that gap runs.
func shellSort(data []int, onGap func(gap int)) {
	n := len(data)
	for gap := n / 2; gap > 0; gap = nextGap(gap) {
		if onGap != nil {
			onGap(gap)
		}
		for pos := gap; pos < n; pos++ {
			gapInsert(data, pos, gap)
		}
	}
}

// nextGap returns the gap for the following pass. A gap of 2 is forced to 1
// explicitly so the final pass is a plain insertion sort even if the halving
// rule changes.
func nextGap(gap int) int {
	if gap == 2 {
		return 1
	}
	return gap / 2
}

// gapInsert shifts data[pos] left in steps of gap past larger values,
// leaving data[pos%gap::gap] up to pos sorted.
func gapInsert(data []int, pos, gap int) {
	val := data[pos]
	for pos >= gap && val < data[pos-gap] {
		data[pos] = data[pos-gap]
		pos -= gap
	}
	data[pos] = val
}
