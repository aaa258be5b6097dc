package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-item-reviews/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that no route pattern matched, so arbitrary
// paths do not grow the metric cardinality.
const unmatchedRoute = "unmatched"

// withMetrics records request count and latency per method, route pattern
// and status.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := wrapResponseWriter(w)

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		metrics.ObserveHTTPRequest(r.Method, route, mw.Status(), start)
	})
}
