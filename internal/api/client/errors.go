package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"syscall"
)

// ErrServerNotRunning is returned when nothing accepts connections at the
// client's base URL.
var ErrServerNotRunning = errors.New("API server not running")

// APIError is a non-2xx response from the server. Message holds the
// decoded error text when the body is JSON and the raw body otherwise.
// Sheet names the worksheet a rejected conversion failed on.
type APIError struct {
	StatusCode int
	Message    string
	Sheet      string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Rejected reports whether the server refused the input itself rather
// than failing to process it.
func (e *APIError) Rejected() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// errorBody covers both the echo routes ({"error","sheet"}) and huma
// problem details ({"title","detail"}).
type errorBody struct {
	Error  string `json:"error"`
	Sheet  string `json:"sheet"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func checkStatus(code int, body []byte) error {
	if code < http.StatusBadRequest {
		return nil
	}

	apiErr := &APIError{StatusCode: code, Message: strings.TrimSpace(string(body))}

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		switch {
		case eb.Error != "":
			apiErr.Message = eb.Error
		case eb.Detail != "":
			apiErr.Message = eb.Detail
		case eb.Title != "":
			apiErr.Message = eb.Title
		}
		apiErr.Sheet = eb.Sheet
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(code)
	}
	return apiErr
}

// sendError maps a transport failure to ErrServerNotRunning when the
// connection was refused.
func (c *Client) sendError(err error) error {
	if isConnectionRefused(err) {
		return fmt.Errorf("%w at %s", ErrServerNotRunning, c.baseURL)
	}
	return fmt.Errorf("sending request: %w", err)
}

func isConnectionRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(err.Error(), "connection refused")
}
