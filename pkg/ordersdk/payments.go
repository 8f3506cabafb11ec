package ordersdk

import (
	"context"
	"fmt"
	"net/http"
)

// UserPayments lists a user's payment history.
func (c *Client) UserPayments(ctx context.Context, userID int64) ([]Payment, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/user/%d", userID), nil)
	if err != nil {
		return nil, err
	}

	var payments []Payment
	if err := decodeJSON(resp, &payments); err != nil {
		return nil, err
	}

	return payments, nil
}

// CreatePayment submits a payment for an order. The server decides the
// outcome; the returned Payment carries the resulting status.
func (c *Client) CreatePayment(ctx context.Context, draft PaymentDraft) (*Payment, error) {
	resp, err := c.do(ctx, http.MethodPost, "/payments", draft)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := decodeJSON(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}
