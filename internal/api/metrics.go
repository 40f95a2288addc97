// ABOUTME: Prometheus instrumentation for the HTTP API
// ABOUTME: Request counters and latency histograms labelled by route
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors registered for one server.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	dreams   *prometheus.CounterVec
}

// NewMetrics registers the API collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		// requests counts handled requests by route and status
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dreamdecoder_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		// duration tracks handler latency; every call rewrites a whole file
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dreamdecoder_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
		}, []string{"method", "route"}),

		// dreams counts journal mutations by operation
		dreams: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dreamdecoder_dream_mutations_total",
			Help: "Dream journal writes by operation",
		}, []string{"operation"}),
	}
}
