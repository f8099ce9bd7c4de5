package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments the device endpoint.
type Metrics struct {
	requests      *prometheus.CounterVec
	fetchErrors   *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbi_helper_attached_devices_requests_total",
			Help: "Requests to /attached-devices by negotiated representation and status code",
		}, []string{"representation", "code"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbi_helper_fetch_errors_total",
			Help: "Failed device fetches by error kind",
		}, []string{"kind"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbi_helper_fetch_duration_seconds",
			Help:    "Time to load config, fetch from the router and apply overrides",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.requests, m.fetchErrors, m.fetchDuration)
	return m
}

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
