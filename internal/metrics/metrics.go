// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieflix_catalog_fallback_total",
			Help: "Catalog reads served from the fallback dataset",
		},
		[]string{"operation", "reason"},
	)

	CatalogWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieflix_catalog_write_failures_total",
			Help: "Catalog writes that failed against the primary store",
		},
		[]string{"operation"},
	)

	StoreProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movieflix_store_probe_total",
			Help: "Primary store liveness probes by result",
		},
		[]string{"result"},
	)

	StoreProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "movieflix_store_probe_duration_seconds",
			Help:    "Duration of primary store liveness probes",
			Buckets: prometheus.DefBuckets,
		},
	)

	// 0 closed, 1 half-open, 2 open
	StoreBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movieflix_store_breaker_state",
			Help: "State of the primary store circuit breaker",
		},
	)
)

const (
	ReasonUnavailable = "unavailable"
	ReasonError       = "error"
)
