package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics for Prometheus
var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movies_api_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	requestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movies_api_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movies_api_mutations_total",
		Help: "Total number of successful catalog writes",
	}, []string{"entity", "op"})

	errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movies_api_errors_total",
		Help: "Total number of errors",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestDurationSeconds)
	prometheus.MustRegister(mutationsTotal)
	prometheus.MustRegister(errorsTotal)
}

// RecordMutation records a successful create, update, patch or delete
func RecordMutation(entity, op string) {
	mutationsTotal.WithLabelValues(entity, op).Inc()
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
