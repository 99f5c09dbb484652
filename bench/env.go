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

package bench

import (
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment describes the machine a run executed on.
type Environment struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	GoVersion  string
	// CPUFeatures lists the instruction set extensions detected at startup.
	CPUFeatures []string
}

// DetectEnvironment returns the Environment of the current process.
func DetectEnvironment() Environment {
	return Environment{
		GOOS:        runtime.GOOS,
		GOARCH:      runtime.GOARCH,
		NumCPU:      runtime.NumCPU(),
		GOMAXPROCS:  runtime.GOMAXPROCS(0),
		GoVersion:   runtime.Version(),
		CPUFeatures: cpuFeatures(),
	}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e Environment) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("goos", e.GOOS)
	enc.AddString("goarch", e.GOARCH)
	enc.AddInt("num_cpu", e.NumCPU)
	enc.AddInt("gomaxprocs", e.GOMAXPROCS)
	enc.AddString("go_version", e.GoVersion)
	return enc.AddArray("cpu_features", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, f := range e.CPUFeatures {
			ae.AppendString(f)
		}
		return nil
	}))
}

var _ zapcore.ObjectMarshaler = Environment{}

// envField is a convenience for logging e under the "env" key.
func envField(e Environment) zap.Field {
	return zap.Object("env", e)
}
