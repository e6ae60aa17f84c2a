package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// outcome: created, returning, skipped, failed
	VisitsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_visits_recorded_total",
			Help: "Visit recording attempts by outcome",
		},
		[]string{"outcome"},
	)

	// status: success, fail, error, circuit_open
	GeolocationLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_geolocation_lookups_total",
			Help: "Geolocation lookups by status",
		},
		[]string{"status"},
	)

	PostViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_post_views_total",
			Help: "Post view counter increments by outcome",
		},
		[]string{"outcome"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stacc_upstream_request_duration_seconds",
			Help:    "Duration of outbound requests to third-party services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	UpstreamRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_upstream_request_errors_total",
			Help: "Failed outbound requests to third-party services",
		},
		[]string{"service"},
	)

	DatasetCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_dataset_cache_results_total",
			Help: "Raw dataset cache lookups by dataset and result",
		},
		[]string{"dataset", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stacc_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	TrackerInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stacc_tracker_tasks_in_flight",
			Help: "Detached side tasks currently running",
		},
	)

	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacc_api_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stacc_api_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func ObserveUpstream(service string, start time.Time, err error) {
	UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		UpstreamRequestErrors.WithLabelValues(service).Inc()
	}
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	APIRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
