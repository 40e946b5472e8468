package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/canvas-classifier/internal/api/handlers"
	"github.com/donaldgifford/canvas-classifier/internal/store"
	storeMocks "github.com/donaldgifford/canvas-classifier/internal/store/mocks"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func TestOverridesHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns overrides",
			path: "/api/v1/overrides",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOverrides(mock.Anything, &store.OverrideQuery{Limit: 50}).
					Return([]domain.ManualOverride{
						{ItemCode: "A-100", Label: "판넬", Code: "10F"},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":50`,
		},
		{
			name: "filters and pagination",
			path: "/api/v1/overrides?item_code_prefix=A-&label=%ED%8C%90%EB%84%AC&limit=10&offset=20&order_by=updated_at",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOverrides(mock.Anything, mock.MatchedBy(func(q *store.OverrideQuery) bool {
						return q.ItemCodePrefix != nil && *q.ItemCodePrefix == "A-" &&
							q.Label != nil && *q.Label == "판넬" &&
							q.Limit == 10 && q.Offset == 20 && q.OrderBy == "updated_at"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"overrides":[]`,
		},
		{
			name:       "invalid order_by returns 422",
			path:       "/api/v1/overrides?order_by=label",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/overrides",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListOverrides(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing overrides failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewOverridesHandler(ms, &stubRefresher{})

			_, api := humatest.New(t)
			handlers.RegisterOverrideRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOverridesHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		itemCode   string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:     "found",
			itemCode: "A-100",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetOverride(mock.Anything, "A-100").
					Return(&domain.ManualOverride{ItemCode: "A-100", Label: "판넬", Code: "10F"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"code":"10F"`,
		},
		{
			name:     "not found",
			itemCode: "missing",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetOverride(mock.Anything, "missing").
					Return(nil, store.ErrNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `override not found`,
		},
		{
			name:     "store error",
			itemCode: "A-100",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetOverride(mock.Anything, "A-100").
					Return(nil, errors.New("connection reset")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `fetching override failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewOverridesHandler(ms, &stubRefresher{})

			_, api := humatest.New(t)
			handlers.RegisterOverrideRoutes(api, h)

			resp := api.Get("/api/v1/overrides/" + tt.itemCode)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestOverridesHandler_Put(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        any
		setupMock   func(*storeMocks.MockStore)
		refreshErr  error
		wantStatus  int
		wantBody    string
		wantRefresh int32
	}{
		{
			name: "saves and refreshes",
			body: map[string]any{"label": "판넬", "code": "10F"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertOverride(mock.Anything, &domain.ManualOverride{
						ItemCode: "A-100", Label: "판넬", Code: "10F",
					}).
					Return(nil).
					Once()
			},
			wantStatus:  http.StatusOK,
			wantBody:    `"label":"판넬"`,
			wantRefresh: 1,
		},
		{
			name: "empty body keeps default label",
			body: map[string]any{},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertOverride(mock.Anything, &domain.ManualOverride{ItemCode: "A-100"}).
					Return(nil).
					Once()
			},
			wantStatus:  http.StatusOK,
			wantBody:    `"item_code":"A-100"`,
			wantRefresh: 1,
		},
		{
			name: "store error skips refresh",
			body: map[string]any{"code": "3F"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertOverride(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `saving override failed`,
		},
		{
			name: "refresh error",
			body: map[string]any{"code": "3F"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpsertOverride(mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			refreshErr:  errors.New("db gone"),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    `override saved but refresh failed`,
			wantRefresh: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			ref := &stubRefresher{err: tt.refreshErr}
			h := handlers.NewOverridesHandler(ms, ref)

			_, api := humatest.New(t)
			handlers.RegisterOverrideRoutes(api, h)

			resp := api.Put("/api/v1/overrides/A-100", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantRefresh, ref.calls.Load())
		})
	}
}

func TestOverridesHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		deleteErr   error
		wantStatus  int
		wantRefresh int32
	}{
		{
			name:        "deletes and refreshes",
			wantStatus:  http.StatusNoContent,
			wantRefresh: 1,
		},
		{
			name:       "not found",
			deleteErr:  store.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store error",
			deleteErr:  errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().DeleteOverride(mock.Anything, "A-100").Return(tt.deleteErr).Once()
			ref := &stubRefresher{}
			h := handlers.NewOverridesHandler(ms, ref)

			_, api := humatest.New(t)
			handlers.RegisterOverrideRoutes(api, h)

			resp := api.Delete("/api/v1/overrides/A-100")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, tt.wantRefresh, ref.calls.Load())
		})
	}
}

func TestOverridesHandler_Refresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		refreshErr error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", wantStatus: http.StatusOK, wantBody: `"status":"refreshed"`},
		{name: "error", refreshErr: errors.New("db gone"), wantStatus: http.StatusInternalServerError, wantBody: `override refresh failed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref := &stubRefresher{err: tt.refreshErr}
			h := handlers.NewOverridesHandler(storeMocks.NewMockStore(t), ref)

			_, api := humatest.New(t)
			handlers.RegisterOverrideRoutes(api, h)

			resp := api.Post("/api/v1/overrides/refresh")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.Equal(t, int32(1), ref.calls.Load())
		})
	}
}
