package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UploadsByResult returns a timeseries panel of workbook conversions per
// second, split by result.
func UploadsByResult() *timeseries.PanelBuilder {
	return lineChart("Conversions", "Workbook conversions per second by result", ThirdWidth).
		WithTarget(PromQuery(`canvas:uploads:rate5m`, "{{result}}", "A")).
		Unit("ops").
		Legend(TableLegend("mean", "max"))
}

// ConversionDuration returns a timeseries panel showing p50 and p95
// workbook conversion time.
func ConversionDuration() *timeseries.PanelBuilder {
	const metric = "canvas_upload_duration_seconds"
	return lineChart("Conversion Duration", "Time to read, classify and write one workbook", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("s")
}

// UploadSizes returns a bar gauge panel showing the distribution of
// uploaded workbook sizes.
func UploadSizes() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Upload Sizes").
		Description("Uploaded workbook sizes over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum(increase(`+Sel("canvas_upload_size_bytes_bucket")+`[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
