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
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when a name or value does not match any
// Algorithm.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithm identifies one of the sorts in this package.
type Algorithm int

const (
	Selection Algorithm = iota
	Shell
	Quick
)

var algorithms = [...]struct {
	label, key string
	sort       func([]int)
}{
	Selection: {"Selection Sort", "selection", SelectionSort},
	Shell:     {"Shell Sort", "shell", ShellSort},
	Quick:     {"Quick Sort", "quick", QuickSort},
}

// All returns every Algorithm in report order.
func All() []Algorithm {
	return []Algorithm{Selection, Shell, Quick}
}

// Valid reports whether a is a known Algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && int(a) < len(algorithms)
}

// String returns the display label, e.g. "Quick Sort".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithms[a].label
}

// Key returns the short lowercase name, e.g. "quick".
func (a Algorithm) Key() string {
	if !a.Valid() {
		return ""
	}
	return algorithms[a].key
}

// Sort sorts data in place with a.
func (a Algorithm) Sort(data []int) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	algorithms[a].sort(data)
	return nil
}

// ParseAlgorithm accepts a short name ("shell") or a display label
// ("Shell Sort"), case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.TrimSpace(name)
	for _, a := range All() {
		if strings.EqualFold(name, a.Key()) || strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
