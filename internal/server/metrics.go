package server

import (
	"strconv"
	"time"

	"github.com/jonathan/csb-validator/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the HTTP API
var (
	// filesValidatedTotal counts uploads by outcome status.
	filesValidatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "csb_files_validated_total",
		Help: "Total number of uploaded files validated, by outcome",
	}, []string{"status"})

	// violationsTotal counts violations by field and kind.
	violationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "csb_violations_total",
		Help: "Total number of field violations found in uploads",
	}, []string{"field", "kind"})

	// requestDuration measures request latency.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "csb_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// rateLimitedTotal counts requests rejected by the rate limiter.
	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "csb_http_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// RecordOutcome records one validated upload
func RecordOutcome(outcome types.FileOutcome) {
	filesValidatedTotal.WithLabelValues(outcome.Status.String()).Inc()
	for _, f := range outcome.Issues {
		for _, v := range f.Violations {
			violationsTotal.WithLabelValues(v.Field, string(v.Kind)).Inc()
		}
	}
}

// RecordRequest records one served request. path should be the route
// pattern rather than the raw URL to keep label cardinality bounded.
func RecordRequest(method, path string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// RecordRateLimited records one rejected request
func RecordRateLimited() {
	rateLimitedTotal.Inc()
}
