package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the workflow module.
type Metrics struct {
	// Runs by terminal status
	RunOutcome *prometheus.CounterVec

	// End-to-end run latency
	RunLatency prometheus.Histogram

	// Provisioning retries across all runs
	ProvisioningRetries prometheus.Counter
}

// New creates a new Metrics instance with all workflow module metrics registered.
func New() *Metrics {
	return &Metrics{
		RunOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "gangway_workflow_runs_total",
			Help: "Total onboarding runs by terminal status",
		}, []string{"status"}),

		RunLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gangway_workflow_run_duration_seconds",
			Help:    "End-to-end duration of onboarding runs",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}),

		ProvisioningRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gangway_workflow_provisioning_retries_total",
			Help: "Total provisioning retry attempts across all runs",
		}),
	}
}

// RecordRun records a finished run.
func (m *Metrics) RecordRun(status string, d time.Duration) {
	if m != nil {
		m.RunOutcome.WithLabelValues(status).Inc()
		m.RunLatency.Observe(d.Seconds())
	}
}

// RecordProvisioningRetries adds retry attempts spent on one space.
func (m *Metrics) RecordProvisioningRetries(n int) {
	if m != nil && n > 0 {
		m.ProvisioningRetries.Add(float64(n))
	}
}
