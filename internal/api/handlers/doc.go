package handlers

// ErrorResponse is the standard error response body of the echo routes.
// Sheet names the offending sheet when a layout could not be recognized.
type ErrorResponse struct {
	Error string `json:"error"           example:"something went wrong"`
	Sheet string `json:"sheet,omitempty" example:"Sheet1"`
}

// StatusResponse is the probe response body. Overrides reports where
// manual overrides come from: "database", "disabled" or "unreachable".
type StatusResponse struct {
	Status    string `json:"status"              example:"ok"`
	Overrides string `json:"overrides,omitempty" example:"database"`
}
