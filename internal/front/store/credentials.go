package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/riloidx/orderfront/pkg/ordersdk"
)

// Credentials is the typed view over the raw KV store. It implements
// ordersdk.TokenStore, so the API transport reads the persisted token (not
// in-memory session state) before every request.
type Credentials struct {
	kv Store
}

var _ ordersdk.TokenStore = (*Credentials)(nil)

func NewCredentials(kv Store) *Credentials {
	return &Credentials{kv: kv}
}

// AccessToken returns the persisted access token, or "" when absent.
func (c *Credentials) AccessToken(ctx context.Context) (string, error) {
	return c.get(ctx, KeyAccessToken)
}

// RefreshToken returns the persisted refresh token, or "" when absent. The
// client persists it but never exchanges it; it is opaque material held for
// the server's benefit.
func (c *Credentials) RefreshToken(ctx context.Context) (string, error) {
	return c.get(ctx, KeyRefreshToken)
}

// Login returns the persisted display login, or "" when absent.
func (c *Credentials) Login(ctx context.Context) (string, error) {
	return c.get(ctx, KeyLogin)
}

// UserID returns the persisted numeric identity. ok is false when the key is
// absent or the stored value is not numeric; a corrupt value is treated the
// same as a missing one.
func (c *Credentials) UserID(ctx context.Context) (id int64, ok bool, err error) {
	raw, err := c.get(ctx, KeyUserID)
	if err != nil || raw == "" {
		return 0, false, err
	}

	id, parseErr := strconv.ParseInt(raw, 10, 64)
	if parseErr != nil {
		return 0, false, nil
	}
	return id, true, nil
}

// SaveSession persists the full credential set established by a login or
// registration.
func (c *Credentials) SaveSession(ctx context.Context, access, refresh, login string, userID int64) error {
	pairs := []struct{ key, value string }{
		{KeyAccessToken, access},
		{KeyRefreshToken, refresh},
		{KeyLogin, login},
		{KeyUserID, strconv.FormatInt(userID, 10)},
	}
	for _, p := range pairs {
		if err := c.kv.Set(ctx, p.key, p.value); err != nil {
			return fmt.Errorf("persist %s: %w", p.key, err)
		}
	}
	return nil
}

// ClearTokens removes only the token pair, leaving login and user id in
// place. This is what the auth service's logout primitive does; Clear is the
// session store's broader reset. Idempotent.
func (c *Credentials) ClearTokens(ctx context.Context) error {
	return c.delete(ctx, KeyAccessToken, KeyRefreshToken)
}

// Clear removes all persisted credential material. Idempotent.
func (c *Credentials) Clear(ctx context.Context) error {
	return c.delete(ctx, KeyAccessToken, KeyRefreshToken, KeyLogin, KeyUserID)
}

func (c *Credentials) get(ctx context.Context, key string) (string, error) {
	value, err := c.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func (c *Credentials) delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := c.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("remove %s: %w", key, err)
		}
	}
	return nil
}
