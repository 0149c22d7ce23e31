// shared/api/metrics.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled, by route, method and status.",
	}, []string{"route", "method", "status"})
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration)
}

// MetricsMiddleware records a counter and latency histogram per request. The
// route label uses the mux path template, not the raw URL, to keep label
// cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w: w}
		next.ServeHTTP(lrw, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		status := lrw.statusCode
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
