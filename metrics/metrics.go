// Package metrics exposes Prometheus instrumentation for block conversion and
// metadata enrichment. A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "notion_jarkup"

const (
	ResultSuccess = "success"
	ResultError   = "error"

	OperationFavicon  = "favicon"
	OperationBookmark = "bookmark"
)

type Metrics struct {
	BlocksConverted    *prometheus.CounterVec
	Conversions        *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
	EnrichmentFetches  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BlocksConverted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_converted_total",
			Help:      "Source blocks visited by the converter, by block type.",
		}, []string{"type"}),
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Top-level conversions, by result.",
		}, []string{"result"}),
		ConversionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Wall time of top-level conversions.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		EnrichmentFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrichment_fetches_total",
			Help:      "Metadata enrichment fetches, by operation and result.",
		}, []string{"operation", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.BlocksConverted, m.Conversions, m.ConversionDuration, m.EnrichmentFetches)
	}
	return m
}

func (m *Metrics) BlockConverted(blockType string) {
	if m == nil {
		return
	}
	m.BlocksConverted.WithLabelValues(blockType).Inc()
}

// ConversionFinished records the outcome of a top-level conversion that
// started at start.
func (m *Metrics) ConversionFinished(start time.Time, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.Conversions.WithLabelValues(result).Inc()
	m.ConversionDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) EnrichmentFetched(operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.EnrichmentFetches.WithLabelValues(operation, result).Inc()
}
