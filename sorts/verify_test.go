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
	"errors"
	"testing"
)

func TestVerify(t *testing.T) {
	if err := Verify(nil, "Quick Sort"); err != nil {
		t.Errorf("Verify(nil) = %v, want nil", err)
	}
	if err := Verify([]int{1, 1, 2, 9}, "Quick Sort"); err != nil {
		t.Errorf("Verify(sorted) = %v, want nil", err)
	}

	err := Verify([]int{1, 4, 3, 2}, "Shell Sort")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Verify(unsorted) = %v, want *ValidationError", err)
	}
	if verr.Algorithm != "Shell Sort" || verr.Index != 1 || verr.Left != 4 || verr.Right != 3 {
		t.Errorf("Verify(unsorted) = %+v", verr)
	}
	if got, want := verr.Error(), "Shell Sort: sequence not sorted at index 1 (4 > 3)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{5}) || !IsSorted([]int{-1, 0, 0}) {
		t.Error("IsSorted rejected a sorted slice")
	}
	if IsSorted([]int{2, 1}) {
		t.Error("IsSorted accepted [2 1]")
	}
}

func TestAlgorithm(t *testing.T) {
	wantLabels := []string{"Selection Sort", "Shell Sort", "Quick Sort"}
	for i, a := range All() {
		if a.String() != wantLabels[i] {
			t.Errorf("%d.String() = %q, want %q", i, a.String(), wantLabels[i])
		}
		got, err := ParseAlgorithm(a.Key())
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.Key(), got, err)
		}
		got, err = ParseAlgorithm(" " + a.String() + " ")
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a.String(), got, err)
		}

		data := []int{3, 1, 2}
		if err := a.Sort(data); err != nil || !IsSorted(data) {
			t.Errorf("%v.Sort = %v, %v", a, data, err)
		}
	}

	if _, err := ParseAlgorithm("bogo"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(bogo) error = %v", err)
	}
	bad := Algorithm(7)
	if err := bad.Sort([]int{2, 1}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Algorithm(7).Sort error = %v", err)
	}
	if bad.String() != "Algorithm(7)" || bad.Key() != "" {
		t.Errorf("Algorithm(7) = %q / %q", bad.String(), bad.Key())
	}
}
