package ordersdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	t.Parallel()

	t.Run("server message wins", func(t *testing.T) {
		err := &APIError{StatusCode: 400, Message: "Quantity must be positive"}
		require.Equal(t, "Quantity must be positive", err.Error())
	})

	t.Run("status fallback", func(t *testing.T) {
		err := &APIError{StatusCode: http.StatusInternalServerError}
		require.Equal(t, "HTTP 500: Internal Server Error", err.Error())
	})

	t.Run("unauthorized detection", func(t *testing.T) {
		require.True(t, (&APIError{StatusCode: 401}).IsUnauthorized())
		require.True(t, (&APIError{StatusCode: 403}).IsUnauthorized())
		require.False(t, (&APIError{StatusCode: 404}).IsUnauthorized())
	})
}

func TestParseErrorResponse(t *testing.T) {
	t.Parallel()

	t.Run("structured payload", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadRequest}
		err := parseErrorResponse(resp, []byte(`{"message": "No such item"}`))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "No such item", apiErr.Message)
	})

	t.Run("non-json body", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusServiceUnavailable}
		err := parseErrorResponse(resp, []byte("upstream timeout"))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Empty(t, apiErr.Message)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	})
}
