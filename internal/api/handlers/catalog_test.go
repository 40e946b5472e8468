package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/canvas-classifier/internal/api/handlers"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func TestCatalogHandler_Summary(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t, domain.ManualOverride{ItemCode: "S-1", Code: "1F"})
	eng.Overrides().Replace([]domain.ManualOverride{{ItemCode: "D-1", Code: "3F"}})

	h := handlers.NewCatalogHandler(eng.Classifier().Catalog(), eng.Overrides())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog")
	require.Equal(t, http.StatusOK, resp.Code)

	var got handlers.CatalogSummary
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))

	assert.Equal(t, 73, got.Sizes)
	assert.Equal(t, "판넬", got.TypeLabels[0])
	assert.Len(t, got.TypeLabels, 6)
	assert.Equal(t, 6, got.ThicknessRules)
	assert.InDelta(t, 0.2, got.SizeTolerance, 1e-9)
	assert.InDelta(t, 0.15, got.ThicknessTolerance, 1e-9)
	assert.Equal(t, "일반(파랑)", got.DefaultTypeLabel)
	assert.Equal(t, 1, got.StaticOverrides)
	assert.Equal(t, 2, got.ActiveOverrides)
}

func TestCatalogHandler_Full(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	h := handlers.NewCatalogHandler(eng.Classifier().Catalog(), eng.Overrides())

	_, api := humatest.New(t)
	handlers.RegisterCatalogRoutes(api, h)

	resp := api.Get("/api/v1/catalog/full")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"code":"10F"`)
	assert.Contains(t, resp.Body.String(), `"default_type_label":"일반(파랑)"`)
}
