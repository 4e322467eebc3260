// SPDX-License-Identifier: MIT

package iterate

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Defaults applied by DefaultConfig and ParseConfig.
const (
	DefaultMaxIterations     = 0
	DefaultRecordingInterval = 1
)

// Config holds the driver settings. Logger and Clock are runtime-only and
// never read from YAML:
//
//	max_iterations: 500
//	recording_interval: 10
//	print_interval: 50
type Config struct {
	// MaxIterations bounds the default stop predicate.
	MaxIterations int `yaml:"max_iterations"`
	// RecordingInterval records the objective on iterations k with
	// k % RecordingInterval == 0; 0 disables recording.
	RecordingInterval int `yaml:"recording_interval"`
	// PrintInterval is the row cadence of the Run progress report; 0 means
	// RecordingInterval.
	PrintInterval int `yaml:"print_interval"`

	// Logger receives structured records; nil discards them.
	Logger *slog.Logger `yaml:"-"`
	// Clock times updates; nil means RealClock.
	Clock Clock `yaml:"-"`
}

// DefaultConfig returns {MaxIterations: 0, RecordingInterval: 1}.
func DefaultConfig() Config {
	return Config{
		MaxIterations:     DefaultMaxIterations,
		RecordingInterval: DefaultRecordingInterval,
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}
	return cfg, nil
}

// Validate rejects negative bounds and intervals.
func (c Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations %d: %w", c.MaxIterations, ErrInvalidMaxIterations)
	}
	if c.RecordingInterval < 0 {
		return fmt.Errorf("recording_interval %d: %w", c.RecordingInterval, ErrInvalidInterval)
	}
	if c.PrintInterval < 0 {
		return fmt.Errorf("print_interval %d: %w", c.PrintInterval, ErrInvalidInterval)
	}
	return nil
}
