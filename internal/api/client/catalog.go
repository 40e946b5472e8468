package client

import "context"

// CatalogSummary mirrors the server's catalog summary response.
type CatalogSummary struct {
	Sizes              int      `json:"sizes"`
	TypeLabels         []string `json:"type_labels"`
	ThicknessRules     int      `json:"thickness_rules"`
	SizeTolerance      float64  `json:"size_tolerance"`
	ThicknessTolerance float64  `json:"thickness_tolerance"`
	DefaultTypeLabel   string   `json:"default_type_label"`
	StaticOverrides    int      `json:"static_overrides"`
	ActiveOverrides    int      `json:"active_overrides"`
}

// Catalog returns a summary of the server's reference catalog.
func (c *Client) Catalog(ctx context.Context) (*CatalogSummary, error) {
	var s CatalogSummary
	if err := c.get(ctx, "/api/v1/catalog", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
