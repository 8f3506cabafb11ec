package ordersdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserPayments(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/payments/user/7", r.URL.Path)
		w.Write([]byte(`[{
			"id": "pay-01",
			"orderId": 12,
			"userId": 7,
			"status": "SUCCESS",
			"timestamp": "2024-06-01T12:30:00",
			"paymentAmount": 24.50
		}]`))
	}))
	defer srv.Close()

	payments, err := New(srv.URL, nil).UserPayments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, "pay-01", payments[0].ID)
	require.Equal(t, int64(12), payments[0].OrderID)
	require.Equal(t, PaymentSuccess, payments[0].Status)
	require.Equal(t, "2024-06-01T12:30:00", payments[0].Timestamp)
}

func TestCreatePayment(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/payments", r.URL.Path)

			var draft PaymentDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			require.Equal(t, int64(12), draft.OrderID)
			require.Equal(t, int64(7), draft.UserID)
			require.InDelta(t, 24.50, draft.PaymentAmount, 0.001)

			w.Write([]byte(`{"id": "pay-02", "orderId": 12, "userId": 7, "status": "SUCCESS", "timestamp": "2024-06-01T12:31:00", "paymentAmount": 24.50}`))
		}))
		defer srv.Close()

		payment, err := New(srv.URL, nil).CreatePayment(context.Background(), PaymentDraft{
			OrderID:       12,
			UserID:        7,
			PaymentAmount: 24.50,
		})
		require.NoError(t, err)
		require.Equal(t, "pay-02", payment.ID)
		require.Equal(t, PaymentSuccess, payment.Status)
	})

	t.Run("message-less failure falls back to status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := New(srv.URL, nil).CreatePayment(context.Background(), PaymentDraft{OrderID: 12, UserID: 7})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Empty(t, apiErr.Message)
		require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Error())
	})
}
