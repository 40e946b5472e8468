package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/canvas-classifier/internal/api/middleware"
	"github.com/donaldgifford/canvas-classifier/internal/metrics"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		perSecond float64
		burst     int
		requests  int
		wantCodes []int
	}{
		{
			name:      "burst then reject",
			perSecond: 0.001,
			burst:     2,
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:      "disabled limiter allows everything",
			perSecond: 0,
			burst:     1,
			requests:  3,
			wantCodes: []int{http.StatusOK, http.StatusOK, http.StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.RateLimit(mw.NewLimiter(tt.perSecond, tt.burst)))
			e.POST("/upload", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			before := ptestutil.ToFloat64(metrics.HTTPRateLimitedTotal)
			rejected := 0

			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(http.MethodPost, "/upload", http.NoBody)
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)

				require.Equal(t, tt.wantCodes[i], rec.Code, "request %d", i)
				if rec.Code == http.StatusTooManyRequests {
					rejected++
					assert.Equal(t, "1", rec.Header().Get("Retry-After"))
					assert.Contains(t, rec.Body.String(), "too many requests")
				}
			}

			assert.GreaterOrEqual(t,
				ptestutil.ToFloat64(metrics.HTTPRateLimitedTotal)-before, float64(rejected))
		})
	}
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	assert.Nil(t, mw.NewLimiter(0, 5))
	assert.Nil(t, mw.NewLimiter(-1, 5))

	l := mw.NewLimiter(2, 4)
	require.NotNil(t, l)
	assert.Equal(t, 4, l.Burst())
}
