// Package metrics defines Prometheus metrics for canvas-classifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "canvas"

// Row classification outcomes.
const (
	OutcomeLabelled = "labelled"
	OutcomeOverride = "override"
	OutcomeEmpty    = "empty"
	OutcomeSkipped  = "skipped"
)

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the upload rate limiter.",
	})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of handler panics recovered.",
	})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// Classification metrics.
var (
	RowsClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_classified_total",
		Help:      "Total number of spreadsheet rows processed, by outcome.",
	}, []string{"outcome"})

	TextClassificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "text_classifications_total",
		Help:      "Total number of free-text classification requests.",
	})

	SheetsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sheets_processed_total",
		Help:      "Total number of sheets classified.",
	})

	SheetsUnrecognizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sheets_unrecognized_total",
		Help:      "Total number of sheets whose header could not be located.",
	})
)

// Upload metrics.
var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of workbook conversions, by result.",
	}, []string{"result"})

	UploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_duration_seconds",
		Help:      "Duration of workbook conversions in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	UploadSizeBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Size of uploaded workbooks in bytes.",
		Buckets:   prometheus.ExponentialBuckets(4096, 4, 8), // 4 KiB .. 64 MiB
	})
)

// Override metrics.
var (
	OverridesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "overrides_loaded",
		Help:      "Number of manual overrides in the active snapshot.",
	})

	OverrideRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "override_refresh_total",
		Help:      "Total number of override snapshot refreshes, by result.",
	}, []string{"result"})

	OverrideRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "override_refresh_timestamp",
		Help:      "Unix timestamp of the last successful override refresh.",
	})
)
