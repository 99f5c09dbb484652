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

// Swap exchanges data[i] and data[j].
func Swap(data []int, i, j int) {
	data[i], data[j] = data[j], data[i]
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	return firstInversion(data) < 0
}

// firstInversion returns the smallest i with data[i] > data[i+1], or -1.
func firstInversion(data []int) int {
	for i := 0; i+1 < len(data); i++ {
		if data[i] > data[i+1] {
			return i
		}
	}
	return -1
}
