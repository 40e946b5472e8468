package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/canvas-classifier/pkg/catalog"
)

// OverrideCounter reports the size of the active override snapshot.
type OverrideCounter interface {
	Len() int
}

// CatalogHandler describes the loaded reference catalog.
type CatalogHandler struct {
	catalog   *catalog.Catalog
	overrides OverrideCounter
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(c *catalog.Catalog, o OverrideCounter) *CatalogHandler {
	return &CatalogHandler{catalog: c, overrides: o}
}

// CatalogSummary counts the catalog's tables.
type CatalogSummary struct {
	Sizes              int      `json:"sizes"               doc:"Number of size entries"`
	TypeLabels         []string `json:"type_labels"         doc:"Type rule labels in priority order"`
	ThicknessRules     int      `json:"thickness_rules"     doc:"Number of thickness rules"`
	SizeTolerance      float64  `json:"size_tolerance"      doc:"Size match tolerance in cm"`
	ThicknessTolerance float64  `json:"thickness_tolerance" doc:"Thickness match tolerance in cm"`
	DefaultTypeLabel   string   `json:"default_type_label"  doc:"Label used when no type rule matches"`
	StaticOverrides    int      `json:"static_overrides"    doc:"Overrides defined in the catalog file"`
	ActiveOverrides    int      `json:"active_overrides"    doc:"Overrides in the current snapshot"`
}

// CatalogOutput is the response for the catalog endpoint.
type CatalogOutput struct {
	Body CatalogSummary
}

// CatalogFullOutput is the response for the full catalog endpoint.
type CatalogFullOutput struct {
	Body catalog.Catalog
}

// Summary returns counts and tolerances of the loaded catalog.
func (h *CatalogHandler) Summary(_ context.Context, _ *struct{}) (*CatalogOutput, error) {
	c := h.catalog
	labels := make([]string, len(c.TypeRules))
	for i := range c.TypeRules {
		labels[i] = c.TypeRules[i].Label
	}

	return &CatalogOutput{Body: CatalogSummary{
		Sizes:              len(c.Sizes),
		TypeLabels:         labels,
		ThicknessRules:     len(c.ThicknessRules),
		SizeTolerance:      c.SizeTolerance,
		ThicknessTolerance: c.ThicknessTolerance,
		DefaultTypeLabel:   c.DefaultTypeLabel,
		StaticOverrides:    len(c.Overrides),
		ActiveOverrides:    h.overrides.Len(),
	}}, nil
}

// Full returns the whole catalog as loaded.
func (h *CatalogHandler) Full(_ context.Context, _ *struct{}) (*CatalogFullOutput, error) {
	return &CatalogFullOutput{Body: *h.catalog}, nil
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-catalog-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog",
		Summary:     "Catalog summary",
		Description: "Returns table sizes, tolerances and the default label of the loaded catalog.",
		Tags:        []string{"catalog"},
	}, h.Summary)

	huma.Register(api, huma.Operation{
		OperationID: "get-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/full",
		Summary:     "Full catalog",
		Description: "Returns every size, type rule and thickness rule of the loaded catalog.",
		Tags:        []string{"catalog"},
	}, h.Full)
}
