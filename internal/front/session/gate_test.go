package session_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/riloidx/orderfront/internal/front/session"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	require.False(t, session.Allowed(session.Snapshot{}))
	require.True(t, session.Allowed(session.Snapshot{Authenticated: true, UserID: 1, Login: "alice"}))
}

func TestGuard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sessions, _, _ := newFixture(t)

	t.Run("denies without a session", func(t *testing.T) {
		require.ErrorIs(t, session.Guard(sessions), session.ErrNotAuthenticated)
	})

	t.Run("allows once established", func(t *testing.T) {
		token := "header." + base64.RawURLEncoding.EncodeToString([]byte(`{"userId":5}`)) + ".sig"
		require.NoError(t, sessions.Establish(ctx, token, "ref", "eve"))
		require.NoError(t, session.Guard(sessions))
	})

	t.Run("denies again after clear", func(t *testing.T) {
		require.NoError(t, sessions.Clear(ctx))
		require.ErrorIs(t, session.Guard(sessions), session.ErrNotAuthenticated)
	})
}
