package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the screening module.
type Metrics struct {
	// Check outcomes by check label and result
	CheckOutcome *prometheus.CounterVec

	// Ingestion failures by offending field
	IngestFailures *prometheus.CounterVec

	// Full screen latency: ingest, checks, render
	ScreenLatency prometheus.Histogram
}

// New creates a Metrics instance with all screening metrics registered.
func New() *Metrics {
	return &Metrics{
		CheckOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "precheck_check_outcomes_total",
			Help: "Total check outcomes by check label and result",
		}, []string{"check", "outcome"}),

		IngestFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "precheck_ingest_failures_total",
			Help: "Total ingestion failures by offending payload field",
		}, []string{"field"}),

		ScreenLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "precheck_screen_duration_seconds",
			Help:    "Duration of a full screening run including ingestion and rendering",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementOutcome records one check outcome.
func (m *Metrics) IncrementOutcome(checkLabel, outcome string) {
	if m != nil {
		m.CheckOutcome.WithLabelValues(checkLabel, outcome).Inc()
	}
}

// IncrementIngestFailure records an ingestion failure for a payload field.
func (m *Metrics) IncrementIngestFailure(field string) {
	if m != nil {
		if field == "" {
			field = "unknown"
		}
		m.IngestFailures.WithLabelValues(field).Inc()
	}
}

// ObserveScreenLatency records the total screening duration.
func (m *Metrics) ObserveScreenLatency(d time.Duration) {
	if m != nil {
		m.ScreenLatency.Observe(d.Seconds())
	}
}
