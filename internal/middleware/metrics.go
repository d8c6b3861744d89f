package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hongminglow/shift-assign/internal/metrics"
)

// Metrics records request counts and latency per matched route pattern.
// It must wrap the ServeMux directly so the pattern is set once the mux returns.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := record(w)
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
