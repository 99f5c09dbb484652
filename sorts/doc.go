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

// Package sorts provides three in-place comparison sorts over []int:
//
//   - SelectionSort: O(n²) comparisons, O(n) swaps
//   - ShellSort: insertion sort over halving gaps (n/2, n/4, ..., 1)
//   - QuickSort: Hoare partitioning around a median-of-three pivot
//
// All three mutate the caller's slice and never allocate a second buffer of
// the input's size. None of them is stable.
//
// # Example Usage
//
//	data := []int{5, 3, 8, 3, 1}
//	sorts.QuickSort(data)
//	if err := sorts.Verify(data, sorts.Quick.String()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Verification
//
// Verify scans adjacent pairs and returns a *ValidationError naming the
// algorithm on the first out-of-order pair. Callers treat it as a defect in
// the algorithm, not a condition to retry.
package sorts
