// Package metrics records per-request latency and counts and exposes them, together with
// Go runtime, process and connection-pool collectors, in the Prometheus text format.
package metrics

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// catchAllPattern is the ServeMux pattern of the not-found handler; requests that only
// match it are labelled with their raw path.
const catchAllPattern = "/"

var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

var labelNames = []string{"method", "route", "status_code"}

type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
}

// New creates a private registry with the HTTP request metrics and the default Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: DefaultBuckets,
		}, labelNames),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labelNames),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestsTotal,
	)
	return m
}

// RegisterDB exports connection pool statistics for db under the given name.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry; a failed gather answers 500.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
		ErrorLog:      slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
	})
}

// Middleware times every request and records it once the handler has returned.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snoop := httpsnoop.CaptureMetrics(next, w, r)

		labels := prometheus.Labels{
			"method":      r.Method,
			"route":       RouteLabel(r),
			"status_code": strconv.Itoa(snoop.Code),
		}
		m.requestsTotal.With(labels).Inc()
		m.requestDuration.With(labels).Observe(snoop.Duration.Seconds())
	})
}

// RouteLabel returns the path part of the pattern the ServeMux matched, or the raw URL
// path when no route matched.
func RouteLabel(r *http.Request) string {
	pattern := r.Pattern
	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		pattern = pattern[i+1:]
	}
	if pattern == "" || pattern == catchAllPattern {
		return r.URL.Path
	}
	if strings.HasSuffix(pattern, "/{$}") {
		pattern = strings.TrimSuffix(pattern, "{$}")
	}
	return pattern
}
