package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jakechorley/term-timetable/pkg/core/allocator"
)

// Metrics holds the Prometheus collectors served on /metrics
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	schedulesTotal  *prometheus.CounterVec
	shortfalls      prometheus.Histogram
	lessons         prometheus.Histogram
}

// NewMetrics registers the collectors on a private registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	schedulesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_schedules_generated_total",
		Help: "Schedules generated, by whether every subject received its hours",
	}, []string{"complete"})

	shortfalls := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_schedule_shortfalls",
		Help:    "Subjects left short of hours per generated schedule",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})

	lessons := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "timetable_schedule_lessons",
		Help:    "Lessons per generated schedule",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})

	registry.MustRegister(requestDuration, requestTotal, schedulesTotal, shortfalls, lessons)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		schedulesTotal:  schedulesTotal,
		shortfalls:      shortfalls,
		lessons:         lessons,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// Registry is exposed for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveSchedule records the size and completeness of a generated schedule
func (m *Metrics) ObserveSchedule(outcome *allocator.AllocationOutcome) {
	m.schedulesTotal.WithLabelValues(strconv.FormatBool(outcome.Complete)).Inc()
	m.shortfalls.Observe(float64(len(outcome.Shortfalls)))
	m.lessons.Observe(float64(outcome.Schedule.LessonCount()))
}
