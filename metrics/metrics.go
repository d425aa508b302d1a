// Package metrics provides Prometheus metrics for the MCP server:
//   - http_request_total / http_request_duration_seconds /
//     http_request_in_flight for the HTTP surface
//   - tool_calls_total for the MCP tool operations
//   - openfda_requests_total / openfda_request_duration_seconds for the
//     upstream fetch client
//
// All metrics are registered with the Prometheus default registry during
// package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total MCP tool invocations by tool name and outcome",
		},
		[]string{"tool", "status"},
	)

	OpenFDARequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openfda_requests_total",
			Help: "Total upstream openFDA requests by HTTP status (or 'error')",
		},
		[]string{"status"},
	)

	OpenFDARequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openfda_request_duration_seconds",
			Help:    "Upstream openFDA request latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(OpenFDARequestsTotal)
	prometheus.MustRegister(OpenFDARequestDuration)
}
