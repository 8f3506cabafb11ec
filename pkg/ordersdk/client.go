package ordersdk

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the bearer credential attached to outgoing requests.
// Implementations should read durable storage rather than in-memory session
// state, so the credential survives process restarts. An empty token with a
// nil error means "no credential": the request is sent without an
// Authorization header and the server rejects it.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenStore is a TokenSource that can also remove the persisted credential
// pair. Logout requires it.
type TokenStore interface {
	TokenSource

	// ClearTokens removes the persisted access and refresh tokens. It must
	// be idempotent and must not touch any other persisted state.
	ClearTokens(ctx context.Context) error
}

// Client is a client for the order-management service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens supplies the access token per request. May be nil, in which
	// case all requests go out unauthenticated.
	Tokens TokenSource
}

// New creates a client for the service at baseURL.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens: tokens,
	}
}

// Logout removes the persisted credential pair. It performs no network call
// and does not reset any in-memory session state; callers owning a session
// object must clear it separately.
func (c *Client) Logout(ctx context.Context) error {
	store, ok := c.Tokens.(TokenStore)
	if !ok {
		return errors.New("ordersdk: token source does not support logout")
	}
	return store.ClearTokens(ctx)
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
