// Package metrics provides Prometheus metrics for the file-keeper server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filekeeper_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Import metrics
	importsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filekeeper_imports_started_total",
			Help: "Total number of import runs started (including restarts)",
		},
	)

	importsFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_imports_finished_total",
			Help: "Total number of import runs that reached a terminal state",
		},
		[]string{"status"},
	)

	importsTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filekeeper_imports_tracked",
			Help: "Number of import jobs currently held by the manager",
		},
	)

	// Pin metrics
	pinCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_pin_cache_lookups_total",
			Help: "Pin status lookups by cache result",
		},
		[]string{"result"},
	)

	pinningCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_pinning_calls_total",
			Help: "Calls to the remote pinning service",
		},
		[]string{"operation", "status"},
	)

	pinningCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filekeeper_pinning_call_duration_seconds",
			Help:    "Duration of calls to the remote pinning service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	rateLimiterRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_rate_limiter_rejections_total",
			Help: "Calls rejected because the limiter queue was full",
		},
		[]string{"limiter"},
	)

	// Bundle metrics
	bundleOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filekeeper_bundle_operations_total",
			Help: "Bundle and unbundle operations",
		},
		[]string{"operation", "status"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordImportStarted records a new import run.
func RecordImportStarted() {
	importsStartedTotal.Inc()
}

// RecordImportFinished records an import run ending in status.
func RecordImportFinished(status string) {
	importsFinishedTotal.WithLabelValues(status).Inc()
}

// SetImportsTracked sets the number of jobs held by the import manager.
func SetImportsTracked(count int) {
	importsTracked.Set(float64(count))
}

// RecordPinCacheLookup records a pin cache lookup. result is one of
// "hit", "stale" or "miss".
func RecordPinCacheLookup(result string) {
	pinCacheLookupsTotal.WithLabelValues(result).Inc()
}

// RecordPinningCall records a call to the pinning service.
func RecordPinningCall(operation string, duration time.Duration, success bool) {
	pinningCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
	pinningCallsTotal.WithLabelValues(operation, statusLabel(success)).Inc()
}

// RecordRateLimiterRejection records a call rejected by a limiter.
func RecordRateLimiterRejection(limiter string) {
	rateLimiterRejectionsTotal.WithLabelValues(limiter).Inc()
}

// RecordBundleOperation records a bundle or unbundle run.
func RecordBundleOperation(operation string, success bool) {
	bundleOperationsTotal.WithLabelValues(operation, statusLabel(success)).Inc()
}
