package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RowsByOutcome returns a stacked timeseries panel of classified rows per
// second, split by outcome.
func RowsByOutcome() *timeseries.PanelBuilder {
	return lineChart("Rows Classified", "Spreadsheet rows per second by outcome", ThirdWidth).
		WithTarget(PromQuery(`canvas:rows_classified:rate5m`, "{{outcome}}", "A")).
		Unit("ops").
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("mean", "max"))
}

// EmptyLabelRatio returns a timeseries panel showing the share of rows
// that received no label.
func EmptyLabelRatio() *timeseries.PanelBuilder {
	expr := Percent(
		`sum(canvas:rows_classified:rate5m{outcome="empty"})`,
		`sum(canvas:rows_classified:rate5m)`,
	)
	return lineChart("Unlabelled Rows %", "Rows whose description did not describe a canvas or panel", ThirdWidth).
		WithTarget(PromQuery(expr, "empty %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(50, 80)).
		ColorScheme(ColorSchemeThresholds())
}

// TextClassifications returns a timeseries panel showing API free-text
// classifications and processed sheets.
func TextClassifications() *timeseries.PanelBuilder {
	return lineChart("Texts & Sheets", "Free-text classifications and sheets processed per second", ThirdWidth).
		WithTarget(PromQuery(Rate("canvas_text_classifications_total"), "texts/s", "A")).
		WithTarget(PromQuery(Rate("canvas_sheets_processed_total"), "sheets/s", "B")).
		WithTarget(PromQuery(Rate("canvas_sheets_unrecognized_total"), "unrecognized/s", "C")).
		Unit("ops")
}
