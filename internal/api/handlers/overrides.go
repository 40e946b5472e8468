package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/canvas-classifier/internal/store"
	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// OverrideRefresher reloads the in-memory override snapshot.
type OverrideRefresher interface {
	RefreshOverrides(ctx context.Context) error
}

// OverridesHandler handles manual override CRUD operations. Every write
// is followed by a snapshot refresh so it takes effect on the next request.
type OverridesHandler struct {
	store     store.Store
	refresher OverrideRefresher
}

// NewOverridesHandler creates a new OverridesHandler.
func NewOverridesHandler(s store.Store, r OverrideRefresher) *OverridesHandler {
	return &OverridesHandler{store: s, refresher: r}
}

// --- Input/Output types ---

// ListOverridesInput is the input for listing overrides with optional filters.
type ListOverridesInput struct {
	ItemCodePrefix string `query:"item_code_prefix" doc:"Filter by item code prefix"`
	Label          string `query:"label"            doc:"Filter by exact label"`
	Limit          int    `query:"limit"            doc:"Number of results"              default:"50"          minimum:"1" maximum:"500"`
	Offset         int    `query:"offset"           doc:"Pagination offset"                                    minimum:"0"`
	OrderBy        string `query:"order_by"         doc:"Sort field"                     enum:"item_code,updated_at,"`
}

// ListOverridesOutput is the response for listing overrides.
type ListOverridesOutput struct {
	Body struct {
		Overrides []domain.ManualOverride `json:"overrides"`
		Total     int                     `json:"total"`
		Limit     int                     `json:"limit"`
		Offset    int                     `json:"offset"`
	}
}

// OverrideKeyInput identifies one override by item code.
type OverrideKeyInput struct {
	ItemCode string `path:"item_code" doc:"Supplier item code"`
}

// OverrideOutput is the response for a single override.
type OverrideOutput struct {
	Body domain.ManualOverride
}

// PutOverrideInput creates or replaces the override for an item code.
type PutOverrideInput struct {
	ItemCode string `path:"item_code" doc:"Supplier item code"`
	Body     struct {
		Label string `json:"label,omitempty" doc:"Base type label; the catalog default when empty" example:"판넬"`
		Code  string `json:"code,omitempty"  doc:"Size code appended to the label"                 example:"10F"`
	}
}

// RefreshOverridesOutput is the response for a manual refresh.
type RefreshOverridesOutput struct {
	Body struct {
		Status string `json:"status" example:"refreshed" doc:"Refresh status"`
	}
}

// --- Handlers ---

// ListOverrides returns stored overrides with optional filters and pagination.
func (h *OverridesHandler) ListOverrides(
	ctx context.Context,
	input *ListOverridesInput,
) (*ListOverridesOutput, error) {
	q := &store.OverrideQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.ItemCodePrefix != "" {
		q.ItemCodePrefix = &input.ItemCodePrefix
	}

	if input.Label != "" {
		q.Label = &input.Label
	}

	overrides, total, err := h.store.ListOverrides(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing overrides failed: " + err.Error())
	}

	if overrides == nil {
		overrides = []domain.ManualOverride{}
	}

	resp := &ListOverridesOutput{}
	resp.Body.Overrides = overrides
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetOverride returns a single override by item code.
func (h *OverridesHandler) GetOverride(
	ctx context.Context,
	input *OverrideKeyInput,
) (*OverrideOutput, error) {
	o, err := h.store.GetOverride(ctx, input.ItemCode)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("override not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching override failed: " + err.Error())
	}

	return &OverrideOutput{Body: *o}, nil
}

// PutOverride creates or replaces an override and refreshes the snapshot.
func (h *OverridesHandler) PutOverride(
	ctx context.Context,
	input *PutOverrideInput,
) (*OverrideOutput, error) {
	o := domain.ManualOverride{
		ItemCode: input.ItemCode,
		Label:    input.Body.Label,
		Code:     input.Body.Code,
	}

	if err := h.store.UpsertOverride(ctx, &o); err != nil {
		return nil, huma.Error500InternalServerError("saving override failed: " + err.Error())
	}

	if err := h.refresher.RefreshOverrides(ctx); err != nil {
		return nil, huma.Error500InternalServerError("override saved but refresh failed: " + err.Error())
	}

	return &OverrideOutput{Body: o}, nil
}

// DeleteOverride removes an override and refreshes the snapshot.
func (h *OverridesHandler) DeleteOverride(
	ctx context.Context,
	input *OverrideKeyInput,
) (*struct{}, error) {
	err := h.store.DeleteOverride(ctx, input.ItemCode)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("override not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("deleting override failed: " + err.Error())
	}

	if err := h.refresher.RefreshOverrides(ctx); err != nil {
		return nil, huma.Error500InternalServerError("override deleted but refresh failed: " + err.Error())
	}

	return &struct{}{}, nil
}

// RefreshOverrides reloads the snapshot from the store on demand.
func (h *OverridesHandler) RefreshOverrides(
	ctx context.Context,
	_ *struct{},
) (*RefreshOverridesOutput, error) {
	if err := h.refresher.RefreshOverrides(ctx); err != nil {
		return nil, huma.Error500InternalServerError("override refresh failed: " + err.Error())
	}

	resp := &RefreshOverridesOutput{}
	resp.Body.Status = "refreshed"
	return resp, nil
}

// RegisterOverrideRoutes registers manual override endpoints with the Huma API.
func RegisterOverrideRoutes(api huma.API, h *OverridesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-overrides",
		Method:      http.MethodGet,
		Path:        "/api/v1/overrides",
		Summary:     "List manual overrides",
		Description: "Returns stored overrides with optional item code prefix and label filters.",
		Tags:        []string{"overrides"},
	}, h.ListOverrides)

	huma.Register(api, huma.Operation{
		OperationID: "get-override",
		Method:      http.MethodGet,
		Path:        "/api/v1/overrides/{item_code}",
		Summary:     "Get an override by item code",
		Description: "Returns the stored override for one supplier item code.",
		Tags:        []string{"overrides"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetOverride)

	huma.Register(api, huma.Operation{
		OperationID: "put-override",
		Method:      http.MethodPut,
		Path:        "/api/v1/overrides/{item_code}",
		Summary:     "Create or replace an override",
		Description: "Pins the label for a supplier item code. Takes effect immediately.",
		Tags:        []string{"overrides"},
	}, h.PutOverride)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-override",
		Method:        http.MethodDelete,
		Path:          "/api/v1/overrides/{item_code}",
		Summary:       "Delete an override",
		Description:   "Removes a stored override. Catalog overrides for the same item code apply again.",
		Tags:          []string{"overrides"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteOverride)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-overrides",
		Method:      http.MethodPost,
		Path:        "/api/v1/overrides/refresh",
		Summary:     "Reload overrides",
		Description: "Reloads the in-memory override snapshot from the database.",
		Tags:        []string{"overrides"},
	}, h.RefreshOverrides)
}
