// Package store persists the client's credential material. It is the durable
// side of the session: the Go analogue of the browser's localStorage, so a
// login survives process restarts without any network call.
package store

import (
	"context"
	"errors"
)

// Keys under which the client persists string values. Absence of any of the
// identity-bearing three (access token, login, user id) means "not
// authenticated" on restore.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyLogin        = "login"
	KeyUserID       = "user_id"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. All values are strings; callers own any parsing.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes key to value, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}
