package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hrdesk",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests currently being served.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdesk",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by route and status.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hrdesk",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time to serve a request, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// Outcome counters for the auth endpoints, incremented by the handlers.
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdesk",
		Name:      "login_attempts_total",
		Help:      "Login attempts by outcome.",
	}, []string{"status"}) // success, invalid_credentials, error

	SignupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrdesk",
		Name:      "signups_total",
		Help:      "Signup attempts by outcome.",
	}, []string{"status"}) // success, duplicate_email, error
)

// Metrics records the request count, duration and in-flight gauge. Matched
// requests are labelled with the chi route pattern, not the raw path, so
// entity ids never become label values.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
