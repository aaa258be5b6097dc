// Package metrics holds the Prometheus collectors of the server and the
// helpers the HTTP and storage layers record through.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "item_reviews_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "item_reviews_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "item_reviews_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// DatabaseQueryErrors counts failed queries by operation, table and
	// retry classification.
	DatabaseQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "item_reviews_database_query_errors_total",
		Help: "Total number of failed database queries",
	}, []string{"operation", "table", "classification"})

	// DatabaseConnections reports connection pool sizes by state
	// (open, in_use, idle).
	DatabaseConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "item_reviews_database_connections",
		Help: "Database connection pool connections by state",
	}, []string{"state"})

	// DatabaseWaitCount is the total number of connections waited for.
	DatabaseWaitCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "item_reviews_database_wait_count",
		Help: "Total number of connections waited for",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// RecordQueryError increments the failed query counter.
func RecordQueryError(operation, table, classification string) {
	DatabaseQueryErrors.WithLabelValues(operation, table, classification).Inc()
}

// RecordDBStats exports a connection pool snapshot.
func RecordDBStats(stats sql.DBStats) {
	DatabaseConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	DatabaseConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	DatabaseConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	DatabaseWaitCount.Set(float64(stats.WaitCount))
}

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(method, route string, status int, start time.Time) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
