// Package handlers implements HTTP handlers for the canvas-classifier API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/canvas-classifier/internal/store"
)

// readyTimeout bounds the database ping behind /readyz.
const readyTimeout = 2 * time.Second

// Override source values reported by Readyz.
const (
	OverridesDatabase    = "database"
	OverridesDisabled    = "disabled"
	OverridesUnreachable = "unreachable"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler. A nil store means the
// server runs without manual overrides and is always ready: classification
// itself needs only the built-in catalog.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when overrides are disabled or their database
// answers a ping, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.store == nil {
		return c.JSON(http.StatusOK, StatusResponse{Status: "ready", Overrides: OverridesDisabled})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			StatusResponse{Status: "unavailable", Overrides: OverridesUnreachable},
		)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready", Overrides: OverridesDatabase})
}
