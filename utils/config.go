package utils

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	PatternDefault = "default"
	PatternRandom  = "random"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the driver
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Variant             string        `json:"variant"`
	TickInterval        time.Duration `json:"tick_interval"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	AutoRestart         bool          `json:"auto_restart"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	BenchTicks          int           `json:"bench_ticks"`
	BenchSizes          []int         `json:"bench_sizes"`
	BenchParallel       int           `json:"bench_parallel"`
	LogLevel            string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               49,
		Height:              40,
		Variant:             "solution",
		TickInterval:        500 * time.Millisecond,
		MaxGenerations:      0, // run until interrupted
		StagnationThreshold: 5,
		AutoRestart:         false,
		Pattern:             PatternDefault,
		RandomDensity:       0.15,
		Seed:                1,
		BenchTicks:          1_000_000,
		BenchSizes:          []int{8, 64},
		BenchParallel:       2,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.Pattern != PatternDefault && c.Pattern != PatternRandom:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	case math.IsNaN(c.RandomDensity) || c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.TickInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative tick interval %v", c.TickInterval)
	}
	for _, size := range c.BenchSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] bench size must be positive, got %d", size)
		}
	}
	return nil
}
