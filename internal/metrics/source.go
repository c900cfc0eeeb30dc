package metrics

import "github.com/prometheus/client_golang/prometheus"

// Menu source Prometheus metrics.
var (
	SourceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinemenu",
			Name:      "source_requests_total",
			Help:      "Total number of upstream menu fetches",
		},
		[]string{"status"}, // "success" / "error"
	)

	SourceRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dinemenu",
			Name:      "source_request_duration_seconds",
			Help:      "Upstream menu fetch duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	SourceItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dinemenu",
			Name:      "source_items",
			Help:      "Number of menu items in the last successful fetch",
		},
	)

	SourceErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinemenu",
			Name:      "source_errors_total",
			Help:      "Upstream menu fetch errors by type",
		},
		[]string{"error_type"}, // "transport" / "status" / "envelope" / "decode"
	)

	SnapshotCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinemenu",
			Name:      "snapshot_cache_total",
			Help:      "Menu snapshot cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var sourceMetricsRegistered bool

// RegisterSourceMetrics registers Prometheus source metrics. Must be called once from main.
func RegisterSourceMetrics() {
	if sourceMetricsRegistered {
		return
	}
	prometheus.MustRegister(SourceRequestsTotal)
	prometheus.MustRegister(SourceRequestDuration)
	prometheus.MustRegister(SourceItems)
	prometheus.MustRegister(SourceErrorsTotal)
	prometheus.MustRegister(SnapshotCacheTotal)
	sourceMetricsRegistered = true
}
