package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastOverrideRefresh returns a stat panel showing time since the override
// snapshot was last reloaded from the database.
func LastOverrideRefresh() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Override Refresh").
		Description("Time since the manual override snapshot was last reloaded").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`time() - max(`+Sel("canvas_override_refresh_timestamp")+`)`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(300, 900)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// OverrideRefreshResults returns a timeseries panel of override refreshes
// per second, split by result.
func OverrideRefreshResults() *timeseries.PanelBuilder {
	return lineChart("Override Refreshes", "Override snapshot reloads per second by result", TSWidth).
		WithTarget(PromQuery(SumRateBy("canvas_override_refresh_total", "result"), "{{result}}", "A")).
		Unit("ops")
}
