package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/canvas-classifier/pkg/classify"
)

// TextClassifier labels free-text descriptions.
type TextClassifier interface {
	Classify(itemCode, text string) classify.Result
}

// ClassifyHandler handles single-description classification requests.
type ClassifyHandler struct {
	classifier TextClassifier
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(c TextClassifier) *ClassifyHandler {
	return &ClassifyHandler{classifier: c}
}

// ClassifyInput is the request body for the classify endpoint.
type ClassifyInput struct {
	Body struct {
		Text     string `json:"text"                doc:"Product description"                   minLength:"1" example:"COTTON CANVAS 53x45.5cm"`
		ItemCode string `json:"item_code,omitempty" doc:"Supplier item code, checked for overrides" required:"false"`
	}
}

// ClassifyOutput is the response for the classify endpoint.
type ClassifyOutput struct {
	Body classify.Result
}

// BatchClassifyInput is the request body for the batch classify endpoint.
type BatchClassifyInput struct {
	Body struct {
		Texts []string `json:"texts" doc:"Product descriptions" minItems:"1" maxItems:"1000"`
	}
}

// BatchClassifyOutput is the response for the batch classify endpoint.
type BatchClassifyOutput struct {
	Body struct {
		Labels []string `json:"labels" doc:"One label per input text, empty when not a canvas product"`
	}
}

// Classify returns the label and derivation details for one description.
func (h *ClassifyHandler) Classify(
	_ context.Context,
	input *ClassifyInput,
) (*ClassifyOutput, error) {
	return &ClassifyOutput{Body: h.classifier.Classify(input.Body.ItemCode, input.Body.Text)}, nil
}

// ClassifyBatch labels many descriptions in input order.
func (h *ClassifyHandler) ClassifyBatch(
	_ context.Context,
	input *BatchClassifyInput,
) (*BatchClassifyOutput, error) {
	resp := &BatchClassifyOutput{}
	resp.Body.Labels = make([]string, len(input.Body.Texts))
	for i, text := range input.Body.Texts {
		resp.Body.Labels[i] = h.classifier.Classify("", text).Label
	}
	return resp, nil
}

// RegisterClassifyRoutes registers classification endpoints with the Huma API.
func RegisterClassifyRoutes(api huma.API, h *ClassifyHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "classify-text",
		Method:      http.MethodPost,
		Path:        "/api/v1/classify",
		Summary:     "Classify a product description",
		Description: "Returns the Korean label for a canvas or panel description along with how it was derived.",
		Tags:        []string{"classify"},
	}, h.Classify)

	huma.Register(api, huma.Operation{
		OperationID: "classify-batch",
		Method:      http.MethodPost,
		Path:        "/api/v1/classify/batch",
		Summary:     "Classify many descriptions",
		Description: "Returns one label per description, in input order.",
		Tags:        []string{"classify"},
	}, h.ClassifyBatch)
}
