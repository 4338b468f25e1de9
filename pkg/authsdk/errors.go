package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error response from the auth service.
// It implements the error interface so SDK callers can inspect the
// HTTP status code alongside the server's message.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is the human-readable message the server answered with
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse attempts to parse an HTTP error response into a typed error.
// The service answers errors either as {"message": "..."} (session endpoints)
// or {"error": "..."} (auth middlewares); both map onto APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var msgResp MessageResponse
	if err := json.Unmarshal(body, &msgResp); err == nil && msgResp.Message != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msgResp.Message,
		}
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
