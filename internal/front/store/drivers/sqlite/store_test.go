package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/riloidx/orderfront/internal/front/store"
	"github.com/riloidx/orderfront/internal/front/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "orderfront.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, store.KeyAccessToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyAccessToken, "tok-1"))
		value, err := s.Get(ctx, store.KeyAccessToken)
		require.NoError(t, err)
		require.Equal(t, "tok-1", value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyAccessToken, "tok-2"))
		value, err := s.Get(ctx, store.KeyAccessToken)
		require.NoError(t, err)
		require.Equal(t, "tok-2", value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, store.KeyAccessToken))
		_, err := s.Get(ctx, store.KeyAccessToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete absent key", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "never_existed"))
	})
}

func TestMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestSessionSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "orderfront.db")

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Set(ctx, store.KeyLogin, "alice"))
	require.NoError(t, s.Close())

	reopened, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.ApplyMigrations())

	value, err := reopened.Get(ctx, store.KeyLogin)
	require.NoError(t, err)
	require.Equal(t, "alice", value)
}
