// Package metrics defines the Prometheus instrumentation for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics
var (
	// MessagesProcessed counts messages by admission outcome.
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_messages_total",
			Help: "Chat messages seen by the ingestion pipeline, by admission status",
		},
		[]string{"status"},
	)

	// ScoreDistribution tracks comparative scores of admitted messages.
	ScoreDistribution = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_score",
			Help:    "Comparative sentiment score of admitted messages",
			Buckets: []float64{-1, -0.5, -0.25, -0.1, -0.05, 0, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)
)

// Store metrics
var (
	// StoreFailures counts failed event-store calls by operation.
	StoreFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_store_failures_total",
			Help: "Failed event store operations by operation name",
		},
		[]string{"operation"},
	)
)

// Reporting metrics
var (
	// ReportsGenerated counts report builds by kind and outcome.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_reports_total",
			Help: "Generated reports by kind and status",
		},
		[]string{"kind", "status"},
	)
)

// Admission status label values.
const (
	StatusAdmitted = "admitted"
	StatusRejected = "rejected"
)

// Report status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
