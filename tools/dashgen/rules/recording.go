package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "canvas-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "canvas-recording",
					Rules: []Rule{
						{
							Record: "canvas:http_requests:rate5m",
							Expr:   `sum(rate(canvas_http_requests_total[5m]))`,
						},
						{
							Record: "canvas:http_errors:rate5m",
							Expr:   `sum(rate(canvas_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "canvas:rows_classified:rate5m",
							Expr:   `sum(rate(canvas_rows_classified_total[5m])) by (outcome)`,
						},
						{
							Record: "canvas:uploads:rate5m",
							Expr:   `sum(rate(canvas_uploads_total[5m])) by (result)`,
						},
						{
							Record: "canvas:upload_failures:rate5m",
							Expr:   `sum(rate(canvas_uploads_total{result="error"}[5m]))`,
						},
						{
							Record: "canvas:override_refresh_errors:rate5m",
							Expr:   `sum(rate(canvas_override_refresh_total{result="error"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
