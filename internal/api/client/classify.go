package client

import (
	"context"

	"github.com/donaldgifford/canvas-classifier/pkg/classify"
)

type classifyRequest struct {
	Text     string `json:"text"`
	ItemCode string `json:"item_code,omitempty"`
}

// Classify returns the label and derivation details for one description.
// itemCode may be empty.
func (c *Client) Classify(ctx context.Context, itemCode, text string) (*classify.Result, error) {
	var res classify.Result
	if err := c.post(ctx, "/api/v1/classify", classifyRequest{Text: text, ItemCode: itemCode}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ClassifyBatch labels many descriptions in one request.
func (c *Client) ClassifyBatch(ctx context.Context, texts []string) ([]string, error) {
	var resp struct {
		Labels []string `json:"labels"`
	}
	if err := c.post(ctx, "/api/v1/classify/batch", map[string][]string{"texts": texts}, &resp); err != nil {
		return nil, err
	}
	return resp.Labels, nil
}
