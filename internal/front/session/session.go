// Package session owns "who is using this client right now": the in-memory
// authentication state, its durable restoration, and the access gate that
// keeps identity-requiring commands behind a login.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/riloidx/orderfront/internal/front/store"
	"github.com/riloidx/orderfront/pkg/tokenx"
)

// Snapshot is the externally visible session state. Outside Establish the
// session is always either fully authenticated (both UserID and Login set) or
// fully unauthenticated; no partial state is observable.
type Snapshot struct {
	Authenticated bool
	UserID        int64
	Login         string
}

// Store is the single source of truth for the current session. It is mutated
// only by Restore, Establish and Clear.
type Store struct {
	creds *store.Credentials

	mu    sync.RWMutex
	state Snapshot
}

func New(creds *store.Credentials) *Store {
	return &Store{creds: creds}
}

// Current returns the session state.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Restore loads the session from durable storage on startup. If the access
// token, the user id and the login are all present, the session becomes
// authenticated with those values; any of them missing (or a non-numeric user
// id) leaves it unauthenticated. Restoration is optimistic: no network call
// is made, local storage is trusted until an API call fails authorization.
// Idempotent.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.creds.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	login, err := s.creds.Login(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	userID, ok, err := s.creds.UserID(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if token == "" || login == "" || !ok {
		s.set(Snapshot{})
		return nil
	}

	s.set(Snapshot{Authenticated: true, UserID: userID, Login: login})
	return nil
}

// Establish records a successful login or registration. The access token's
// payload is decoded first to obtain the numeric identity; a malformed token
// fails the call before anything is persisted, leaving both memory and
// storage untouched. A malformed token against a correct server is an
// integration error, not a user-facing one.
func (s *Store) Establish(ctx context.Context, accessToken, refreshToken, login string) error {
	claims, err := tokenx.Decode(accessToken)
	if err != nil {
		return fmt.Errorf("establish session: %w", err)
	}

	if err := s.creds.SaveSession(ctx, accessToken, refreshToken, login, claims.UserID); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}

	s.set(Snapshot{Authenticated: true, UserID: claims.UserID, Login: login})
	return nil
}

// Clear removes all persisted credential material and resets the in-memory
// state to unauthenticated. Clearing an already-unauthenticated session is a
// no-op, not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.set(Snapshot{})
	return nil
}

func (s *Store) set(state Snapshot) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
