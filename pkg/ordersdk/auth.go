package ordersdk

import (
	"context"
	"net/http"
)

// Login authenticates with login and password. It is a pure request/response
// call: the returned tokens are not stored anywhere, callers feed them into
// their session layer.
func (c *Client) Login(ctx context.Context, reqBody LoginRequest) (*AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", reqBody)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}

// Register creates a new account. Like Login it mutates no client state and
// returns the same response shape.
func (c *Client) Register(ctx context.Context, reqBody RegisterRequest) (*AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/registration", reqBody)
	if err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := decodeJSON(resp, &auth); err != nil {
		return nil, err
	}

	return &auth, nil
}
