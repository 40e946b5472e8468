package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return lineChart("Request Rate", "HTTP requests per second", TSWidth).
		WithTarget(PromQuery(`canvas:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const metric = "canvas_http_request_duration_seconds"
	return lineChart("Latency Percentiles", "HTTP request duration percentiles", TSWidth).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		WithTarget(PromQuery(Quantile(0.99, metric), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max"))
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return lineChart("Error Rate %", "HTTP 5xx error rate as percentage of total requests", TSWidth).
		WithTarget(PromQuery(
			Percent(`canvas:http_errors:rate5m`, `canvas:http_requests:rate5m`),
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// RateLimited returns a timeseries panel showing uploads rejected by the
// rate limiter.
func RateLimited() *timeseries.PanelBuilder {
	return lineChart("Rate Limited", "Upload requests rejected with 429 per second", TSWidth).
		WithTarget(PromQuery(Rate("canvas_http_rate_limited_total"), "429/s", "A")).
		Unit("reqps")
}
