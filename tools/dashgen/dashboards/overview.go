// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/canvas-classifier/tools/dashgen/panels"
)

// BuildOverview constructs the canvas-classifier overview dashboard with
// all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Canvas Classifier Overview").
		Uid("canvas-overview").
		Tags([]string{"canvas", "canvas-classifier"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.OverridesLoadedStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	// Row 3: Classification.
	b.WithRow(dashboard.NewRowBuilder("Classification").
		WithPanel(panels.RowsByOutcome()).
		WithPanel(panels.EmptyLabelRatio()).
		WithPanel(panels.TextClassifications()))

	// Row 4: Conversions.
	b.WithRow(dashboard.NewRowBuilder("Conversions").
		WithPanel(panels.UploadsByResult()).
		WithPanel(panels.ConversionDuration()).
		WithPanel(panels.UploadSizes()))

	// Row 5: Overrides.
	b.WithRow(dashboard.NewRowBuilder("Overrides").
		WithPanel(panels.LastOverrideRefresh()).
		WithPanel(panels.OverrideRefreshResults()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
