package ordersdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is an error response from the order service. Message carries the
// server's human-readable message when its error payload has one; callers
// presenting errors should fall back to their own per-action text when it is
// empty.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Message is the server-supplied message, possibly empty.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether the server rejected the request's
// credential. Note the client deliberately does not react to this by forcing
// a logout; an expired session surfaces exactly like any other server error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// parseErrorResponse turns a non-2xx response into an *APIError. The service
// reports validation and business failures as {"message": "..."} payloads;
// anything else falls back to the bare status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	// Best effort: a non-JSON or message-less body leaves Message empty.
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
