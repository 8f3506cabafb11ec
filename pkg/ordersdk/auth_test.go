package ordersdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)

			var req LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "alice", req.Login)
			require.Equal(t, "secret12", req.Password)

			w.Write([]byte(`{"login": "alice", "accessToken": "a.b.c", "refreshToken": "r"}`))
		}))
		defer srv.Close()

		resp, err := New(srv.URL, nil).Login(context.Background(), LoginRequest{
			Login:    "alice",
			Password: "secret12",
		})
		require.NoError(t, err)
		require.Equal(t, "alice", resp.Login)
		require.Equal(t, "a.b.c", resp.AccessToken)
		require.Equal(t, "r", resp.RefreshToken)
	})

	t.Run("bad credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Invalid login or password"}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, nil).Login(context.Background(), LoginRequest{Login: "alice", Password: "nope"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.True(t, apiErr.IsUnauthorized())
		require.Equal(t, "Invalid login or password", apiErr.Message)
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/registration", r.URL.Path)

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bob", req.Login)
		require.Equal(t, "1990-04-02", req.BirthDate)

		w.Write([]byte(`{"login": "bob", "accessToken": "x.y.z", "refreshToken": "r2"}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL, nil).Register(context.Background(), RegisterRequest{
		Login:     "bob",
		Password:  "secret12",
		Name:      "Bob",
		Surname:   "Jones",
		BirthDate: "1990-04-02",
		Email:     "bob@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "bob", resp.Login)
}
