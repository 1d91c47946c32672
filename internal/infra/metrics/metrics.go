package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// HTTPRequestsTotal counts served requests by route template and status code
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration is the request latency by route template
	HTTPRequestDuration *prometheus.HistogramVec

	// ForecastRequestsTotal counts forecast lookups by result status. A rising DEGRADED share means the provider is failing.
	ForecastRequestsTotal *prometheus.CounterVec

	// ForecastImportsTotal counts processed import messages by outcome
	ForecastImportsTotal *prometheus.CounterVec

	// TrackedCities is the number of distinct cities with stored observations, refreshed periodically
	TrackedCities prometheus.Gauge
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	ForecastRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_requests_total",
			Help: "Total number of forecast lookups by result status",
		},
		[]string{"status"},
	)
	ForecastImportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_imports_total",
			Help: "Total number of forecast import messages by outcome",
		},
		[]string{"outcome"},
	)

	TrackedCities = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_tracked_cities",
			Help: "Distinct cities with stored observations",
		},
	)

	registry.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, ForecastRequestsTotal, ForecastImportsTotal, TrackedCities)
}

// RecordForecast counts a forecast lookup with the given status
func RecordForecast(status string) {
	ForecastRequestsTotal.WithLabelValues(status).Inc()
}

// RecordImport counts a processed import message
func RecordImport(outcome string) {
	ForecastImportsTotal.WithLabelValues(strings.ToLower(outcome)).Inc()
}

// Handler serves application and runtime metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
