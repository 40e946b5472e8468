package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// canvas-classifier operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "canvas-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "canvas-alerts",
					Rules: []Rule{
						{
							Alert: "CanvasDown",
							Expr:  `absent(up{job="canvas-classifier"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Canvas classifier is down",
								"description": "The canvas-classifier job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CanvasReadinessDown",
							Expr:  `canvas_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Canvas classifier readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "CanvasHighErrorRate",
							Expr:  `canvas:http_errors:rate5m / canvas:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on canvas classifier",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CanvasHandlerPanics",
							Expr:  `increase(canvas_http_panics_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "HTTP handler panics recovered",
								"description": "One or more requests panicked in the last 5 minutes; check the logs for the stack trace.",
							},
						},
						{
							Alert: "CanvasConversionFailures",
							Expr:  `canvas:upload_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Workbook conversions are failing",
								"description": "Workbook conversions have been failing with internal errors for more than 5 minutes.",
							},
						},
						{
							Alert: "CanvasOverrideRefreshFailing",
							Expr:  `canvas:override_refresh_errors:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Manual override refresh is failing",
								"description": "Reloading manual overrides from the database has failed for 10 minutes; the last snapshot is still in use.",
							},
						},
						{
							Alert: "CanvasOverridesStale",
							Expr:  `canvas_override_refresh_timestamp > 0 and time() - canvas_override_refresh_timestamp > 900`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Manual override snapshot is stale",
								"description": "The override snapshot has not been refreshed for more than 15 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
