package lightgbm

import (
	"github.com/YuminosukeSato/lgbmpmml/pkg/log"
	"github.com/YuminosukeSato/lgbmpmml/pkg/metrics"
)

// Option configures a Converter.
type Option func(*Converter)

// WithWorkers sets the number of decode goroutines. Zero or less means one
// per CPU.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}

// WithSequentialThreshold converts ensembles of at most n trees on the
// calling goroutine.
func WithSequentialThreshold(n int) Option {
	return func(c *Converter) {
		if n >= 0 {
			c.sequentialThreshold = n
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records conversions on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}
