package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "suraksha",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	// Verification metrics
	verificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Subsystem: "verification",
			Name:      "total",
			Help:      "Total number of alert verifications",
		},
		[]string{"verdict"},
	)

	verificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "suraksha",
			Subsystem: "verification",
			Name:      "duration_seconds",
			Help:      "Duration of a single alert verification",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	verificationFlagsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Subsystem: "verification",
			Name:      "flags_total",
			Help:      "Total number of risk flags raised",
		},
		[]string{"flag"},
	)

	lookupFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Subsystem: "lookup",
			Name:      "failures_total",
			Help:      "External lookup failures resolved to defaults",
		},
		[]string{"lookup"},
	)

	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "suraksha",
			Subsystem: "report",
			Name:      "total",
			Help:      "Total number of misinformation reports",
		},
		[]string{"reason"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordVerification records one verification outcome
func RecordVerification(verified bool, flags []string, duration time.Duration) {
	verdict := "unverified"
	if verified {
		verdict = "verified"
	}
	verificationsTotal.WithLabelValues(verdict).Inc()
	verificationDuration.Observe(duration.Seconds())
	for _, f := range flags {
		verificationFlagsTotal.WithLabelValues(f).Inc()
	}
}

// RecordLookupFailure records an external lookup failure
func RecordLookupFailure(lookup string) {
	lookupFailuresTotal.WithLabelValues(lookup).Inc()
}

// RecordReport records a misinformation report submission
func RecordReport(reason string) {
	reportsTotal.WithLabelValues(reason).Inc()
}
