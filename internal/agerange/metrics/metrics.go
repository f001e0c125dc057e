// Package metrics provides Prometheus metrics for age range requests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values. Error outcomes reuse the provider error kinds.
const (
	OutcomeSharing   = "sharing"
	OutcomeDeclined  = "declined_sharing"
	OutcomeCancelled = "cancelled"
)

// Metrics holds the age range request metrics.
type Metrics struct {
	RequestsTotal          *prometheus.CounterVec   // Requests by provider and outcome
	RequestDurationSeconds *prometheus.HistogramVec // Time until the provider answered, by provider
	GateTotal              *prometheus.CounterVec   // Shared ranges by gate and whether they met it
	ResetsTotal            *prometheus.CounterVec   // ResetMockData calls by provider
}

// New registers the metrics with reg. Pass prometheus.DefaultRegisterer in
// binaries and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agerange_requests_total",
			Help: "Total number of age range requests by provider and outcome",
		}, []string{"provider", "outcome"}),

		RequestDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "agerange_request_duration_seconds",
			Help: "Duration of age range requests, including time spent on the consent prompt",
			// Prompts wait on a person, so the upper buckets reach into minutes.
			Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 15, 30, 60, 180},
		}, []string{"provider"}),

		GateTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agerange_gate_evaluations_total",
			Help: "Shared age ranges checked against each requested gate",
		}, []string{"gate", "met"}),

		ResetsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agerange_mock_resets_total",
			Help: "Total number of ResetMockData calls by provider",
		}, []string{"provider"}),
	}
}

// RecordRequest counts a finished request and observes its duration.
func (m *Metrics) RecordRequest(provider, outcome string, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.RequestDurationSeconds.WithLabelValues(provider).Observe(durationSeconds)
}

// RecordGate counts whether a shared range met a requested gate.
func (m *Metrics) RecordGate(gate string, met bool) {
	label := "false"
	if met {
		label = "true"
	}
	m.GateTotal.WithLabelValues(gate, label).Inc()
}

// RecordReset counts a ResetMockData call.
func (m *Metrics) RecordReset(provider string) {
	m.ResetsTotal.WithLabelValues(provider).Inc()
}
