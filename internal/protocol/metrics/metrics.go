package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the protocol module.
type Metrics struct {
	// Lookup outcomes by operation and status code
	LookupOutcome *prometheus.CounterVec

	// Lookup latency by operation
	LookupLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with all protocol module metrics registered.
func New() *Metrics {
	return &Metrics{
		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gangway_protocol_lookups_total",
			Help: "Total protocol store operations by operation and status code",
		}, []string{"operation", "status"}), // operation: "get", "create", "spaces"

		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gangway_protocol_lookup_duration_seconds",
			Help:    "Duration of protocol store operations by operation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// RecordLookup records the outcome and duration of a store operation.
func (m *Metrics) RecordLookup(operation string, status int, d time.Duration) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(operation, statusLabel(status)).Inc()
		m.LookupLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

func statusLabel(status int) string {
	switch status {
	case 200:
		return "200"
	case 201:
		return "201"
	case 404:
		return "404"
	case 500:
		return "500"
	case 503:
		return "503"
	default:
		return "other"
	}
}
