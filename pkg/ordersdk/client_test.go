package ordersdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenStore backed by plain fields.
type staticTokens struct {
	access  string
	cleared bool
}

func (s *staticTokens) AccessToken(ctx context.Context) (string, error) {
	return s.access, nil
}

func (s *staticTokens) ClearTokens(ctx context.Context) error {
	s.access = ""
	s.cleared = true
	return nil
}

// sourceOnly implements TokenSource but not TokenStore.
type sourceOnly struct{}

func (sourceOnly) AccessToken(ctx context.Context) (string, error) { return "", nil }

func TestBearerInjection(t *testing.T) {
	t.Parallel()

	t.Run("token attached when present", func(t *testing.T) {
		var gotAuth, gotReqID string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotReqID = r.Header.Get("X-Request-ID")
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := New(srv.URL, &staticTokens{access: "tok-abc"})
		_, err := client.UserOrders(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, "Bearer tok-abc", gotAuth)
		require.NotEmpty(t, gotReqID)
	})

	t.Run("no header without token", func(t *testing.T) {
		var gotAuth string
		var hadAuth bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, hadAuth = r.Header["Authorization"]
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := New(srv.URL, &staticTokens{})
		_, err := client.Items(context.Background())
		require.NoError(t, err)
		require.Empty(t, gotAuth)
		require.False(t, hadAuth)
	})

	t.Run("nil token source", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		client := New(srv.URL, nil)
		_, err := client.Items(context.Background())
		require.NoError(t, err)
	})
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client := New("http://localhost:8080/", nil)
	require.Equal(t, "http://localhost:8080", client.BaseURL)
	require.Equal(t, "http://localhost:8080/orders", client.url("/orders"))
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears persisted tokens only", func(t *testing.T) {
		tokens := &staticTokens{access: "tok"}
		client := New("http://localhost:8080", tokens)

		require.NoError(t, client.Logout(context.Background()))
		require.True(t, tokens.cleared)
		require.Empty(t, tokens.access)
	})

	t.Run("read-only token source", func(t *testing.T) {
		client := New("http://localhost:8080", sourceOnly{})
		require.Error(t, client.Logout(context.Background()))
	})
}
