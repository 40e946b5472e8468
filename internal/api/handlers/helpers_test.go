package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/canvas-classifier/internal/engine"
	"github.com/donaldgifford/canvas-classifier/pkg/catalog"
	"github.com/donaldgifford/canvas-classifier/pkg/classify"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine builds an engine over the embedded catalog with the given
// static overrides and no store.
func newTestEngine(t *testing.T, static ...domain.ManualOverride) *engine.Engine {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	cat.Overrides = static

	return engine.NewEngine(classify.New(cat), engine.WithLogger(quietLogger()))
}

// stubRefresher counts refresh calls and returns err.
type stubRefresher struct {
	calls atomic.Int32
	err   error
}

func (s *stubRefresher) RefreshOverrides(context.Context) error {
	s.calls.Add(1)
	return s.err
}
