// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presentations_completed_total",
			Help: "Total number of presentations moved to the completed collection",
		},
		[]string{"group", "semester"},
	)

	MarkEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mark_entries_total",
			Help: "Total number of mark records created or updated",
		},
		[]string{"semester"},
	)

	MarkTotalHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mark_total_score",
			Help:    "Distribution of mark totals",
			Buckets: prometheus.LinearBuckets(5, 5, 10),
		},
		[]string{"year"},
	)

	ReportExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_exports_total",
			Help: "Total number of report exports",
		},
		[]string{"kind", "format"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
