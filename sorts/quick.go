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

// QuickSort sorts data in place using recursive Hoare partitioning with a
// median-of-three pivot.
//
// Recursion always descends into the smaller partition and iterates over the
// larger one, so stack depth stays O(log n) even on adversarial input. Time
// is still O(n²) in the worst case.
func QuickSort(data []int) {
	quickSort(data, 0, len(data)-1)
}

// quickSort sorts the inclusive range data[first:last+1].
func quickSort(data []int, first, last int) {
	for first < last {
		p := partition(data, first, last)
		if p-first < last-p {
			quickSort(data, first, p-1)
			first = p + 1
		} else {
			quickSort(data, p+1, last)
			last = p - 1
		}
	}
}

// partition rearranges data[first:last+1] around the median of its first,
// middle and last elements and returns the pivot's final index. Elements
// left of the index are <= pivot, elements right of it are > pivot.
func partition(data []int, first, last int) int {
	medianOfThree(data, first, last)
	// medianOfThree leaves the median in the middle slot; move it to first
	// so it becomes the pivot.
	Swap(data, first, (first+last)/2)

	pivot := data[first]
	left, right := first, last
	for left < right {
		for left < right && data[left] <= pivot {
			left++
		}
		// data[first] == pivot stops this scan.
		for data[right] > pivot {
			right--
		}
		if left < right {
			Swap(data, left, right)
		}
	}
	Swap(data, first, right)
	return right
}

// medianOfThree orders data[first], data[mid] and data[last] with three
// compare-and-swap steps, leaving the median at mid.
func medianOfThree(data []int, first, last int) {
	mid := (first + last) / 2
	if data[mid] < data[first] {
		Swap(data, first, mid)
	}
	if data[last] < data[mid] {
		Swap(data, mid, last)
	}
	if data[mid] < data[first] {
		Swap(data, first, mid)
	}
}
