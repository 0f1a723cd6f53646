package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	chimw "github.com/go-chi/chi/middleware"

	"github.com/drstein77/marketcatalog/internal/metrics"
)

// PrometheusMetrics returns middleware that collects HTTP metrics labelled by
// chi route pattern.
func PrometheusMetrics(serviceName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			metrics.HTTPRequestsInFlight.WithLabelValues(serviceName).Inc()
			defer metrics.HTTPRequestsInFlight.WithLabelValues(serviceName).Dec()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			code := ww.Status()
			if code == 0 {
				code = http.StatusOK
			}
			status := strconv.Itoa(code)

			routePattern := "unknown"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				routePattern = rctx.RoutePattern()
			}

			metrics.HTTPRequestsTotal.WithLabelValues(serviceName, r.Method, routePattern, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(serviceName, r.Method, routePattern, status).Observe(time.Since(start).Seconds())
		})
	}
}
