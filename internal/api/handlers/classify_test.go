package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/canvas-classifier/internal/api/handlers"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func TestClassifyHandler_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantLabel  string
		wantBody   string
	}{
		{
			name:       "panel with catalog size",
			body:       map[string]any{"text": "Birch Panel 22.7x15.8 CANVAS"},
			wantStatus: http.StatusOK,
			wantLabel:  "판넬 1F",
		},
		{
			name:       "override by item code",
			body:       map[string]any{"text": "anything", "item_code": "S-1"},
			wantStatus: http.StatusOK,
			wantLabel:  "아사 캔버스 10F",
		},
		{
			name:       "outside domain",
			body:       map[string]any{"text": "paper bag"},
			wantStatus: http.StatusOK,
			wantLabel:  "",
		},
		{
			name:       "missing text returns 422",
			body:       map[string]any{},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property text to be present`,
		},
		{
			name:       "empty text returns 422",
			body:       map[string]any{"text": ""},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected length >= 1`,
		},
		{
			name:       "invalid JSON returns 400",
			body:       strings.NewReader(`not json`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng := newTestEngine(t, domain.ManualOverride{ItemCode: "S-1", Label: "아사 캔버스", Code: "10F"})
			h := handlers.NewClassifyHandler(eng)

			_, api := humatest.New(t)
			handlers.RegisterClassifyRoutes(api, h)

			resp := api.Post("/api/v1/classify", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var res classify.Result
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
			assert.Equal(t, tt.wantLabel, res.Label)
		})
	}
}

func TestClassifyHandler_ClassifyDetails(t *testing.T) {
	t.Parallel()

	h := handlers.NewClassifyHandler(newTestEngine(t))

	_, api := humatest.New(t)
	handlers.RegisterClassifyRoutes(api, h)

	resp := api.Post("/api/v1/classify", map[string]any{"text": "canvas 53x45.5cm 4.0x1.8cm"})
	require.Equal(t, http.StatusOK, resp.Code)

	var res classify.Result
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &res))
	assert.True(t, res.InDomain)
	assert.Equal(t, "10F", res.Code)
	require.NotNil(t, res.SizeNumber)
	assert.Equal(t, 10, *res.SizeNumber)
	assert.Equal(t, res.Thickness+" 10F", res.Label)
}

func TestClassifyHandler_ClassifyBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantLabels []string
	}{
		{
			name: "labels in input order",
			body: map[string]any{"texts": []string{
				"canvas triangle 45",
				"paper bag",
				"canvas dia 30",
			}},
			wantStatus: http.StatusOK,
			wantLabels: []string{"삼각형 45", "", "원형캔버스 지름 30"},
		},
		{
			name:       "empty list returns 422",
			body:       map[string]any{"texts": []string{}},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewClassifyHandler(newTestEngine(t))

			_, api := humatest.New(t)
			handlers.RegisterClassifyRoutes(api, h)

			resp := api.Post("/api/v1/classify/batch", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body struct {
				Labels []string `json:"labels"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.wantLabels, body.Labels)
		})
	}
}
