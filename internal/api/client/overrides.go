package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/canvas-classifier/pkg/types"
)

// OverrideList is one page of stored overrides.
type OverrideList struct {
	Overrides []domain.ManualOverride `json:"overrides"`
	Total     int                     `json:"total"`
	Limit     int                     `json:"limit"`
	Offset    int                     `json:"offset"`
}

// ListOverridesParams filters ListOverrides. Zero values are omitted.
type ListOverridesParams struct {
	ItemCodePrefix string
	Label          string
	Limit          int
	Offset         int
	OrderBy        string
}

func (p ListOverridesParams) encode() string {
	v := url.Values{}
	if p.ItemCodePrefix != "" {
		v.Set("item_code_prefix", p.ItemCodePrefix)
	}
	if p.Label != "" {
		v.Set("label", p.Label)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		v.Set("order_by", p.OrderBy)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// overrideRequest contains only the fields the API accepts for a put.
type overrideRequest struct {
	Label string `json:"label,omitempty"`
	Code  string `json:"code,omitempty"`
}

// ListOverrides returns stored overrides matching p.
func (c *Client) ListOverrides(ctx context.Context, p ListOverridesParams) (*OverrideList, error) {
	var list OverrideList
	if err := c.get(ctx, "/api/v1/overrides"+p.encode(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetOverride returns the stored override for an item code.
func (c *Client) GetOverride(ctx context.Context, itemCode string) (*domain.ManualOverride, error) {
	var o domain.ManualOverride
	if err := c.get(ctx, "/api/v1/overrides/"+url.PathEscape(itemCode), &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// SetOverride creates or replaces the override for o.ItemCode.
func (c *Client) SetOverride(ctx context.Context, o *domain.ManualOverride) (*domain.ManualOverride, error) {
	var saved domain.ManualOverride
	req := overrideRequest{Label: o.Label, Code: o.Code}
	if err := c.put(ctx, "/api/v1/overrides/"+url.PathEscape(o.ItemCode), req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteOverride removes the stored override for an item code.
func (c *Client) DeleteOverride(ctx context.Context, itemCode string) error {
	return c.del(ctx, "/api/v1/overrides/"+url.PathEscape(itemCode), nil)
}

// RefreshOverrides asks the server to reload its override snapshot.
func (c *Client) RefreshOverrides(ctx context.Context) error {
	return c.post(ctx, "/api/v1/overrides/refresh", nil, nil)
}
