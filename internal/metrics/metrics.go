package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Inventory loader metrics
var (
	InventoryLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryLoads,
			Help: HelpTextInventoryLoads,
		},
		[]string{LabelOutcome},
	)

	InventoryLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameInventoryLoadDuration,
			Help:    HelpTextInventoryLoadDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	InventoryItemsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameInventoryItemsLoaded,
			Help: HelpTextInventoryItemsLoaded,
		},
	)
)

// RecordInventoryLoad records the outcome and latency of one load
func RecordInventoryLoad(outcome string, seconds float64) {
	InventoryLoads.WithLabelValues(outcome).Inc()
	InventoryLoadDuration.Observe(seconds)
}
