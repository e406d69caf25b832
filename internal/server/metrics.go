package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exported by the server. Each
// Metrics instance carries its own registry so repeated construction in
// tests never collides on duplicate registration.
type Metrics struct {
	registry          *prometheus.Registry
	requestsTotal     *prometheus.CounterVec
	activeRequests    prometheus.Gauge
	reductionDuration *prometheus.HistogramVec
	handler           http.Handler
}

// NewMetrics creates and registers the server's Prometheus instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recipsum_requests_total",
			Help: "Total number of HTTP requests by path and status.",
		}, []string{"path", "status"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recipsum_active_requests",
			Help: "Number of requests currently being served.",
		}),
		reductionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recipsum_reduction_duration_seconds",
			Help:    "Wall time of reductions served over HTTP.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.activeRequests,
		m.reductionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests bumps the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests releases the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// CountRequest records a completed request.
func (m *Metrics) CountRequest(path, status string) {
	m.requestsTotal.WithLabelValues(path, status).Inc()
}

// ObserveReduction records the wall time of one reduction.
func (m *Metrics) ObserveReduction(strategy string, seconds float64) {
	m.reductionDuration.WithLabelValues(strategy).Observe(seconds)
}

// WritePrometheus serves the metrics exposition for this instance.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
