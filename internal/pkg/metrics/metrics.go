// Package metrics exposes the service's Prometheus metrics on a private registry.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lockerbooking"

// Outcome labels shared by bookings and batches.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Metrics holds all service metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Booking metrics
	BookingsTotal *prometheus.CounterVec
	BatchesTotal  *prometheus.CounterVec

	// Locker network metrics
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// Terminal directory metrics
	TerminalCacheFetches *prometheus.CounterVec
	TerminalCacheSize    prometheus.Gauge
}

// New creates the metrics and registers them, together with the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	m.BookingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	m.BatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Booking batches by classification",
		},
		[]string{"outcome"},
	)

	m.GatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_requests_total",
			Help:      "Calls to the locker network by operation and HTTP status (0 for network errors)",
		},
		[]string{"operation", "status"},
	)

	m.GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "gateway_request_duration_seconds",
			Help:      "Locker network call duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	m.TerminalCacheFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terminal_cache_fetches_total",
			Help:      "Terminal directory fetches by result",
		},
		[]string{"result"},
	)

	m.TerminalCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "terminal_cache_size",
			Help:      "Number of terminals currently cached",
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.BatchesTotal,
		m.GatewayRequestsTotal,
		m.GatewayRequestDuration,
		m.TerminalCacheFetches,
		m.TerminalCacheSize,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordBooking(success bool) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome(success)).Inc()
}

// RecordBatch counts a finished batch under its classification
// ("all_succeeded", "partial", "all_failed").
func (m *Metrics) RecordBatch(classification string) {
	if m == nil {
		return
	}
	m.BatchesTotal.WithLabelValues(classification).Inc()
}

// RecordGatewayRequest counts one locker network call. status is the HTTP status
// code, or 0 when no response was received.
func (m *Metrics) RecordGatewayRequest(operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequestsTotal.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTerminalFetch counts one directory fetch and, on success, updates the cache size.
func (m *Metrics) RecordTerminalFetch(success bool, size int) {
	if m == nil {
		return
	}
	m.TerminalCacheFetches.WithLabelValues(outcome(success)).Inc()
	m.TerminalCacheSize.Set(float64(size))
}

func outcome(success bool) string {
	if success {
		return OutcomeSucceeded
	}
	return OutcomeFailed
}
