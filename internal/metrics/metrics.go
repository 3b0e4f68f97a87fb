// Package metrics exposes Prometheus counters for the mortgage-whatif HTTP
// server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts amortization calculations by payment frequency and
	// whether acceleration was requested.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_calculations_total",
			Help: "Total number of amortization calculations",
		},
		[]string{"frequency", "accelerated"},
	)

	// Requests counts HTTP requests by endpoint and outcome.
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_http_requests_total",
			Help: "HTTP requests served by the calculation API",
		},
		[]string{"endpoint", "status"},
	)

	// InputErrors counts rejected inputs by endpoint.
	InputErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_input_errors_total",
			Help: "Calculation requests rejected during input validation",
		},
		[]string{"endpoint"},
	)
)
