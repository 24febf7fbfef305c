package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rating lifecycle events.
const (
	RatingSubmitted = "submitted"
	RatingUpdated   = "updated"
	RatingDeleted   = "deleted"
	RatingConflict  = "conflict"
)

// Metrics holds the API collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	ratingEvents *prometheus.CounterVec
}

// New registers the API collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store_rating",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "store_rating",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"method", "route"})

	ratingEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "store_rating",
		Subsystem: "ratings",
		Name:      "events_total",
		Help:      "Rating lifecycle events by kind.",
	}, []string{"event"})

	reg.MustRegister(httpRequests, httpDuration, ratingEvents)

	return &Metrics{
		registry:     reg,
		httpRequests: httpRequests,
		httpDuration: httpDuration,
		ratingEvents: ratingEvents,
	}
}

// ObserveHTTP records one finished request. route is the matched route template.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordRatingEvent counts a rating lifecycle event.
func (m *Metrics) RecordRatingEvent(event string) {
	if m == nil {
		return
	}
	m.ratingEvents.WithLabelValues(event).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
