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

// SelectionSort sorts data in place by repeatedly moving the minimum of the
// unsorted suffix to its front.
func SelectionSort(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		posMin := i
		for next := i + 1; next < n; next++ {
			if data[next] < data[posMin] {
				posMin = next
			}
		}
		Swap(data, i, posMin)
	}
}
