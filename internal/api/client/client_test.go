package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Catalog(context.Background())
	require.ErrorIs(t, err, ErrServerNotRunning)
	assert.Contains(t, err.Error(), "API server not running at http://127.0.0.1:1")

	_, err = c.Convert(context.Background(), "order.xlsx", strings.NewReader("data"))
	require.ErrorIs(t, err, ErrServerNotRunning)
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Classify(context.Background(), "", "canvas 10F")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	c := New("http://localhost:8080/", WithHTTPClient(&http.Client{}))
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestClient_Classify(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/classify", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req classifyRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Birch Panel 22.7x15.8 CANVAS", req.Text)
		assert.Equal(t, "A-1", req.ItemCode)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"판넬 1F","in_domain":true,"base_type":"판넬","code":"1F"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Classify(context.Background(), "A-1", "Birch Panel 22.7x15.8 CANVAS")
	require.NoError(t, err)
	assert.Equal(t, "판넬 1F", res.Label)
	assert.True(t, res.InDomain)
	assert.Equal(t, "1F", res.Code)
}

func TestClient_ClassifyBatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/classify/batch", r.URL.Path)

		var req map[string][]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"canvas dia 30", "paper bag"}, req["texts"])

		_, _ = w.Write([]byte(`{"labels":["원형캔버스 지름 30",""]}`))
	}))
	defer srv.Close()

	labels, err := New(srv.URL).ClassifyBatch(context.Background(), []string{"canvas dia 30", "paper bag"})
	require.NoError(t, err)
	assert.Equal(t, []string{"원형캔버스 지름 30", ""}, labels)
}

func TestClient_ListOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    ListOverridesParams
		wantQuery string
	}{
		{name: "no filters", wantQuery: ""},
		{
			name:      "all filters",
			params:    ListOverridesParams{ItemCodePrefix: "A-", Label: "판넬", Limit: 10, Offset: 5, OrderBy: "updated_at"},
			wantQuery: "item_code_prefix=A-&label=%ED%8C%90%EB%84%AC&limit=10&offset=5&order_by=updated_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/overrides", r.URL.Path)
				assert.Equal(t, tt.wantQuery, r.URL.RawQuery)
				_, _ = w.Write([]byte(`{"overrides":[{"item_code":"A-100","label":"판넬","code":"10F"}],"total":1,"limit":50,"offset":0}`))
			}))
			defer srv.Close()

			list, err := New(srv.URL).ListOverrides(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, 1, list.Total)
			require.Len(t, list.Overrides, 1)
			assert.Equal(t, "A-100", list.Overrides[0].ItemCode)
		})
	}
}

func TestClient_OverrideCRUD(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.EscapedPath())
		mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"item_code":"A/1","label":"판넬","code":"10F"}`))
		case http.MethodPut:
			var req overrideRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, overrideRequest{Label: "판넬", Code: "10F"}, req)
			_, _ = w.Write([]byte(`{"item_code":"A/1","label":"판넬","code":"10F"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"status":"refreshed"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	got, err := c.GetOverride(ctx, "A/1")
	require.NoError(t, err)
	assert.Equal(t, "10F", got.Code)

	saved, err := c.SetOverride(ctx, &domain.ManualOverride{ItemCode: "A/1", Label: "판넬", Code: "10F"})
	require.NoError(t, err)
	assert.Equal(t, "판넬", saved.Label)

	require.NoError(t, c.DeleteOverride(ctx, "A/1"))
	require.NoError(t, c.RefreshOverrides(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /api/v1/overrides/A%2F1",
		"PUT /api/v1/overrides/A%2F1",
		"DELETE /api/v1/overrides/A%2F1",
		"POST /api/v1/overrides/refresh",
	}, calls)
}

func TestClient_Catalog(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/catalog", r.URL.Path)
		_, _ = w.Write([]byte(`{"sizes":73,"type_labels":["판넬"],"size_tolerance":0.2,"default_type_label":"일반(파랑)","active_overrides":2}`))
	}))
	defer srv.Close()

	s, err := New(srv.URL).Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 73, s.Sizes)
	assert.Equal(t, "일반(파랑)", s.DefaultTypeLabel)
	assert.Equal(t, 2, s.ActiveOverrides)
}

func TestClient_Convert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/convert", r.URL.Path)

		f, fh, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		assert.Equal(t, "order.xlsx", fh.Filename)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "xlsx bytes", string(data))

		w.Header().Set("Content-Disposition",
			`attachment; filename*=utf-8''order_%EB%B6%84%EB%A5%98%EA%B2%B0%EA%B3%BC.xlsx`)
		_, _ = w.Write([]byte("result bytes"))
	}))
	defer srv.Close()

	out, err := New(srv.URL).Convert(context.Background(), "order.xlsx", strings.NewReader("xlsx bytes"))
	require.NoError(t, err)
	assert.Equal(t, "order_분류결과.xlsx", out.Filename)
	assert.Equal(t, "result bytes", string(out.Data))
}

func TestClient_Convert_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"sheet \"Notes\": unrecognized sheet layout","sheet":"Notes"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Convert(context.Background(), "notes.xlsx", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 422)")
	assert.Contains(t, err.Error(), "unrecognized sheet layout")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Notes", apiErr.Sheet)
	assert.True(t, apiErr.Rejected())
}

func TestCheckStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
		body string
		want *APIError
	}{
		{
			name: "success",
			code: http.StatusOK,
			body: `{"label":"판넬 1F"}`,
		},
		{
			name: "echo error with sheet",
			code: http.StatusUnprocessableEntity,
			body: `{"error":"unrecognized sheet layout","sheet":"Notes"}`,
			want: &APIError{StatusCode: 422, Message: "unrecognized sheet layout", Sheet: "Notes"},
		},
		{
			name: "problem details",
			code: http.StatusNotFound,
			body: `{"title":"Not Found","status":404,"detail":"no override for item A-1"}`,
			want: &APIError{StatusCode: 404, Message: "no override for item A-1"},
		},
		{
			name: "problem title only",
			code: http.StatusBadGateway,
			body: `{"title":"Bad Gateway","status":502}`,
			want: &APIError{StatusCode: 502, Message: "Bad Gateway"},
		},
		{
			name: "plain text body",
			code: http.StatusRequestEntityTooLarge,
			body: "request entity too large\n",
			want: &APIError{StatusCode: 413, Message: "request entity too large"},
		},
		{
			name: "empty body",
			code: http.StatusServiceUnavailable,
			want: &APIError{StatusCode: 503, Message: "Service Unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkStatus(tt.code, []byte(tt.body))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr)
			assert.Equal(t, tt.code < http.StatusInternalServerError, apiErr.Rejected())
		})
	}
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get("User-Agent"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"label":"","in_domain":false}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Classify(context.Background(), "", "x")
	require.NoError(t, err)
	_, err = New(srv.URL, WithUserAgent("canvas-classifier/1.2.3")).Classify(context.Background(), "", "x")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"canvas-classifier-cli", "canvas-classifier/1.2.3"}, got)
}

func TestAttachmentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		disposition string
		want        string
	}{
		{name: "plain", disposition: `attachment; filename="result.xlsx"`, want: "result.xlsx"},
		{name: "extended", disposition: `attachment; filename*=utf-8''a_%EB%B6%84.xlsx`, want: "a_분.xlsx"},
		{name: "missing", disposition: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, attachmentName(tt.disposition))
		})
	}
}
