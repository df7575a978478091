// Package metrics provides Prometheus instrumentation for QAI API calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects client-side request metrics.
// A nil *Recorder is valid and records nothing, so instrumentation can be
// left unwired without guarding every call site.
type Recorder struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder and registers its collectors.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "qai",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total API requests issued, by method, path, and outcome.",
			},
			[]string{"method", "path", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "qai",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "API request latency in seconds, by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(r.requestsTotal, r.requestDuration)
	return r
}

// ObserveRequest records one completed request.
func (r *Recorder) ObserveRequest(method, path, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(method, path, outcome).Inc()
	r.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
