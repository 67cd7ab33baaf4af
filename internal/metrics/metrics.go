// Package metrics holds the prometheus collectors of the detection pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "surveillance_detector"

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	ObservationsTotal  *prometheus.CounterVec
	DetectionsTotal    *prometheus.CounterVec
	HandlerFailures    *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec
	ThreatScore        prometheus.Histogram
	RegisteredHandlers prometheus.Gauge
	AggregateScore     prometheus.Gauge
	Incidents          prometheus.Gauge
}

// New registers the collectors with reg. A nil reg gets a private registry,
// which keeps tests and parallel instances from colliding.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		ObservationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_total",
			Help:      "Observations processed by protocol.",
		}, []string{"protocol"}),

		DetectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "detections_total",
			Help:      "Scored detections by protocol and severity.",
		}, []string{"protocol", "severity"}),

		HandlerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_failures_total",
			Help:      "Handler calls that returned an error or panicked.",
		}, []string{"handler", "operation"}),

		ProcessingDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Time spent classifying one observation.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		}, []string{"protocol"}),

		ThreatScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "threat_score",
			Help:      "Distribution of adjusted threat scores.",
			Buckets:   []float64{10, 30, 50, 70, 90, 100},
		}),

		RegisteredHandlers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registered_handlers",
			Help:      "Handlers currently held by the registry.",
		}),

		AggregateScore: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "aggregate_score",
			Help:      "Score of the latest aggregate assessment.",
		}),

		Incidents: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "incidents",
			Help:      "Incidents in the latest aggregate assessment.",
		}),
	}
}

// RecordObservation counts one processed observation
func (m *Metrics) RecordObservation(protocol string, took time.Duration) {
	if m == nil {
		return
	}
	m.ObservationsTotal.WithLabelValues(protocol).Inc()
	m.ProcessingDuration.WithLabelValues(protocol).Observe(took.Seconds())
}

// RecordDetection counts one scored detection
func (m *Metrics) RecordDetection(protocol, severity string, score int) {
	if m == nil {
		return
	}
	m.DetectionsTotal.WithLabelValues(protocol, severity).Inc()
	m.ThreatScore.Observe(float64(score))
}

// RecordHandlerFailure counts a failed or panicking handler call
func (m *Metrics) RecordHandlerFailure(handler, operation string) {
	if m == nil {
		return
	}
	m.HandlerFailures.WithLabelValues(handler, operation).Inc()
}

// SetRegisteredHandlers publishes the registry size
func (m *Metrics) SetRegisteredHandlers(n int) {
	if m == nil {
		return
	}
	m.RegisteredHandlers.Set(float64(n))
}

// SetAggregate publishes the latest aggregate assessment
func (m *Metrics) SetAggregate(score, incidents int) {
	if m == nil {
		return
	}
	m.AggregateScore.Set(float64(score))
	m.Incidents.Set(float64(incidents))
}
