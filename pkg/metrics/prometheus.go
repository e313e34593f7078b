// Package metrics provides Prometheus metrics for tree conversion.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the conversion metrics. A nil *Manager is valid and records
// nothing, so callers need no enabled checks.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	treesConverted     prometheus.Counter
	nodesDecoded       prometheus.Counter
	conversionErrors   *prometheus.CounterVec
	treeDecodeDuration prometheus.Histogram
	conversionDuration prometheus.Histogram
}

// NewManager creates a Manager and registers its collectors. Without
// WithPrometheusRegistry the collectors go to a fresh private registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "lgbmpmml",
		subsystem:        "converter",
		histogramBuckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.treesConverted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trees_converted_total",
		Help:      "Total number of trees decoded into TreeModels",
	})

	m.nodesDecoded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "nodes_decoded_total",
		Help:      "Total number of internal and leaf nodes produced",
	})

	m.conversionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversion_errors_total",
			Help:      "Failed tree conversions by error kind",
		},
		[]string{"kind"},
	)

	m.treeDecodeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tree_decode_seconds",
		Help:      "Time spent decoding a single tree",
		Buckets:   m.histogramBuckets,
	})

	m.conversionDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "conversion_seconds",
		Help:      "Time spent converting a whole ensemble",
		Buckets:   m.histogramBuckets,
	})
}

// Registry returns the registry holding the collectors, e.g. for promhttp.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordTree records one successfully decoded tree.
func (m *Manager) RecordTree(nodes int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.treesConverted.Inc()
	m.nodesDecoded.Add(float64(nodes))
	m.treeDecodeDuration.Observe(elapsed.Seconds())
}

// RecordError records a failed conversion of the given kind.
func (m *Manager) RecordError(kind string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "other"
	}
	m.conversionErrors.WithLabelValues(kind).Inc()
}

// RecordConversion records the duration of a whole ensemble conversion.
func (m *Manager) RecordConversion(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.conversionDuration.Observe(elapsed.Seconds())
}
