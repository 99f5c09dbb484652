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

//go:build arm64

package bench

import "golang.org/x/sys/cpu"

func cpuFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.ARM64.HasASIMD, "asimd")
	add(cpu.ARM64.HasATOMICS, "atomics")
	add(cpu.ARM64.HasCRC32, "crc32")
	add(cpu.ARM64.HasSVE, "sve")
	add(cpu.ARM64.HasSVE2, "sve2")
	return features
}
