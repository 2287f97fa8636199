package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Upstream catalog Prometheus metrics.
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokedex",
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream catalog requests",
		},
		[]string{"endpoint", "status"}, // endpoint: list / detail
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pokedex",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream catalog request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"endpoint"},
	)

	UpstreamErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pokedex",
			Name:      "upstream_errors_total",
			Help:      "Total upstream catalog errors",
		},
		[]string{"endpoint", "error_type"}, // transport / status / decode
	)

	CatalogItemsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pokedex",
			Name:      "catalog_items_served_total",
			Help:      "Total reshaped catalog items returned to clients",
		},
	)
)

var registerUpstreamOnce sync.Once

// RegisterUpstreamMetrics registers the upstream catalog metrics. Safe to call more than once.
func RegisterUpstreamMetrics() {
	registerUpstreamOnce.Do(func() {
		prometheus.MustRegister(UpstreamRequestsTotal)
		prometheus.MustRegister(UpstreamRequestDuration)
		prometheus.MustRegister(UpstreamErrorsTotal)
		prometheus.MustRegister(CatalogItemsServed)
	})
}
