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

import "fmt"

// ValidationError reports a sequence left out of order by a sort.
type ValidationError struct {
	// Algorithm is the label of the sort that produced the sequence.
	Algorithm string
	// Index is the first position with data[Index] > data[Index+1].
	Index       int
	Left, Right int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: sequence not sorted at index %d (%d > %d)",
		e.Algorithm, e.Index, e.Left, e.Right)
}

// Verify checks that data is in non-decreasing order. It returns a
// *ValidationError carrying label for the first adjacent pair out of order.
func Verify(data []int, label string) error {
	i := firstInversion(data)
	if i < 0 {
		return nil
	}
	return &ValidationError{
		Algorithm: label,
		Index:     i,
		Left:      data[i],
		Right:     data[i+1],
	}
}
