package main

import "errors"

// KnownMetrics is the set of metric names exported by canvas-classifier
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"canvas_http_request_duration_seconds": true,
	"canvas_http_requests_total":           true,
	"canvas_http_rate_limited_total":       true,
	"canvas_http_panics_total":             true,

	// Health metrics.
	"canvas_healthz_up": true,
	"canvas_readyz_up":  true,

	// Classification metrics.
	"canvas_rows_classified_total":      true,
	"canvas_text_classifications_total": true,
	"canvas_sheets_processed_total":     true,
	"canvas_sheets_unrecognized_total":  true,

	// Conversion metrics.
	"canvas_uploads_total":           true,
	"canvas_upload_duration_seconds": true,
	"canvas_upload_size_bytes":       true,

	// Override metrics.
	"canvas_overrides_loaded":           true,
	"canvas_override_refresh_total":     true,
	"canvas_override_refresh_timestamp": true,

	// Recording rules.
	"canvas:http_requests:rate5m":           true,
	"canvas:http_errors:rate5m":             true,
	"canvas:rows_classified:rate5m":         true,
	"canvas:uploads:rate5m":                 true,
	"canvas:upload_failures:rate5m":         true,
	"canvas:override_refresh_errors:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
