package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodatlas",
			Subsystem: "catalog_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "foodatlas",
			Subsystem: "catalog_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Auth resolution outcomes by credential source
	AuthResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "foodatlas",
			Subsystem: "catalog_api",
			Name:      "auth_resolutions_total",
			Help:      "Authentication resolution outcomes",
		},
		[]string{"method", "outcome"},
	)

	// Stale cookie self-healing events
	StaleCookiesClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "foodatlas",
			Subsystem: "catalog_api",
			Name:      "stale_cookies_cleared_total",
			Help:      "Clear-cookie directives emitted for cookies naming missing users",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordAuthResolution records the outcome of an auth resolution attempt
func RecordAuthResolution(method, outcome string) {
	AuthResolutionsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordStaleCookieCleared records a stale-cookie self-healing event
func RecordStaleCookieCleared() {
	StaleCookiesClearedTotal.Inc()
}
