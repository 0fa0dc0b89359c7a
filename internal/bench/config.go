// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench expands a configuration into a scenario matrix, runs it
// sequentially on the cooperative executor, and aggregates timing samples
// into a report.
package bench

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from YAML duration strings
// such as "1µs" or "2ms" via time.ParseDuration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config controls the scenario matrix and sampling depth of a run.
type Config struct {
	// Samples is the number of timed iterations per yield scenario.
	Samples int `yaml:"samples"`

	// TimerSamples is the number of timed iterations per timer scenario.
	// Timer scenarios sample less because the wait dominates each iteration.
	TimerSamples int `yaml:"timer_samples"`

	// Warmup is the number of untimed iterations before sampling begins.
	Warmup int `yaml:"warmup"`

	// Lengths lists the sequence lengths in the scenario matrix.
	Lengths []int `yaml:"lengths"`

	// TimerDelays lists the sleep durations in the scenario matrix.
	TimerDelays []Duration `yaml:"timer_delays"`
}

// DefaultConfig mirrors the sampling shape of the study this harness
// reproduces: the empty and one-element cases plus a longer traversal,
// a 1µs simulated wait, and a reduced sample count for timer scenarios.
func DefaultConfig() Config {
	return Config{
		Samples:      100,
		TimerSamples: 10,
		Warmup:       10,
		Lengths:      []int{0, 1, 16},
		TimerDelays:  []Duration{Duration(time.Microsecond)},
	}
}

// LoadConfig reads a YAML config file over the defaults.
// Unknown fields are rejected (catches typos like "sample:" vs "samples:").
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a complete run.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.TimerSamples <= 0 {
		return fmt.Errorf("timer_samples must be positive, got %d", c.TimerSamples)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must be non-negative, got %d", c.Warmup)
	}
	if len(c.Lengths) == 0 {
		return fmt.Errorf("lengths must not be empty")
	}
	for _, n := range c.Lengths {
		if n < 0 {
			return fmt.Errorf("lengths must be non-negative, got %d", n)
		}
	}
	for _, d := range c.TimerDelays {
		if d < 0 {
			return fmt.Errorf("timer_delays must be non-negative, got %v", time.Duration(d))
		}
	}
	return nil
}
