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

// Package config loads sortbench settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/history"
	"github.com/ajroetker/go-sortbench/report"
	"github.com/ajroetker/go-sortbench/sorts"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "sortbench.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SORTBENCH_"

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid config")

// Config holds all sortbench configuration.
type Config struct {
	// Size is the number of integers per dataset.
	Size int `yaml:"size"`
	// Trials is the number of datasets sorted by every algorithm.
	Trials int `yaml:"trials"`
	// MaxValue bounds generated values to [0, MaxValue).
	MaxValue int `yaml:"max_value"`
	// Seed for the random source; 0 picks a time-based seed.
	Seed uint64 `yaml:"seed"`
	// Parallel runs the algorithms of a trial concurrently.
	Parallel bool `yaml:"parallel"`
	// Algorithms by short name, in report order.
	Algorithms []string `yaml:"algorithms"`
	// Output is the report file path.
	Output string `yaml:"output"`

	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// HistoryConfig configures the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the stock configuration: three trials of 50,000
// values in [0, 100000).
func DefaultConfig() *Config {
	algs := sorts.All()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Key()
	}
	return &Config{
		Size:       bench.DefaultSize,
		Trials:     bench.DefaultTrials,
		MaxValue:   bench.DefaultMaxValue,
		Algorithms: names,
		Output:     report.DefaultPath,
		History: HistoryConfig{
			Path: history.DefaultPath,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides reads SORTBENCH_* variables. Empty values are ignored.
func (c *Config) applyEnvOverrides() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SIZE", &c.Size},
		{"TRIALS", &c.Trials},
		{"MAX_VALUE", &c.MaxValue},
	}
	for _, o := range ints {
		v := os.Getenv(EnvPrefix + o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, o.key, v)
		}
		*o.dst = n
	}

	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q is not an unsigned integer", ErrInvalid, EnvPrefix, v)
		}
		c.Seed = n
	}
	if v := os.Getenv(EnvPrefix + "PARALLEL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sPARALLEL=%q is not a boolean", ErrInvalid, EnvPrefix, v)
		}
		c.Parallel = b
	}
	if v := os.Getenv(EnvPrefix + "ALGORITHMS"); v != "" {
		c.Algorithms = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvPrefix + "OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvPrefix + "HISTORY_PATH"); v != "" {
		c.History.Path = v
		c.History.Enabled = true
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for values a run cannot use.
func (c *Config) Validate() error {
	if _, err := c.Bench(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return fmt.Errorf("%w: history enabled without a path", ErrInvalid)
	}
	if _, err := c.Logging.ZapConfig(false); err != nil {
		return err
	}
	return nil
}

// Bench converts c to a validated bench.Config.
func (c *Config) Bench() (bench.Config, error) {
	var algs []sorts.Algorithm
	for _, name := range c.Algorithms {
		a, err := sorts.ParseAlgorithm(name)
		if err != nil {
			return bench.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		algs = append(algs, a)
	}
	if len(algs) == 0 {
		return bench.Config{}, fmt.Errorf("%w: no algorithms selected", ErrInvalid)
	}

	bc := bench.Config{
		Size:       c.Size,
		Trials:     c.Trials,
		MaxValue:   c.MaxValue,
		Algorithms: algs,
		Parallel:   c.Parallel,
	}
	if err := bc.Validate(); err != nil {
		return bench.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return bc, nil
}
