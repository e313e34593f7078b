// Package config defines the converter configuration and how it is loaded.
package config

import (
	"github.com/YuminosukeSato/lgbmpmml/pkg/errors"
	"github.com/YuminosukeSato/lgbmpmml/pkg/log"
)

// Log output formats.
const (
	LogFormatJSON    = "json"
	LogFormatZerolog = "zerolog"
)

// Sentinel error kinds for this package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the logging backend: json (slog) or zerolog.
	LogFormat string `koanf:"log_format"`

	// Workers sets the number of decode goroutines; 0 means one per CPU.
	Workers int `koanf:"workers"`

	// SequentialThreshold is the largest ensemble converted without
	// spawning workers.
	SequentialThreshold int `koanf:"sequential_threshold"`

	// IndicatorValue is the category value binary features are compared to.
	IndicatorValue string `koanf:"indicator_value"`

	// Target names the predicted field in the mining schema. Optional.
	Target string `koanf:"target"`

	// MetricsEnabled turns on Prometheus collection.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		LogFormat:           LogFormatJSON,
		Workers:             0,
		SequentialThreshold: 4,
		IndicatorValue:      "1",
		MetricsEnabled:      false,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level: %v", err)
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatZerolog:
	default:
		return errors.Wrapf(ErrInvalidConfig, "log_format must be %q or %q, got %q", LogFormatJSON, LogFormatZerolog, c.LogFormat)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.SequentialThreshold < 0 {
		return errors.Wrapf(ErrInvalidConfig, "sequential_threshold must not be negative, got %d", c.SequentialThreshold)
	}
	if c.IndicatorValue == "" {
		return errors.Wrap(ErrInvalidConfig, "indicator_value must not be empty")
	}
	return nil
}
