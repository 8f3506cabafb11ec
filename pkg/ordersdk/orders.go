package ordersdk

import (
	"context"
	"fmt"
	"net/http"
)

// UserOrders lists all orders belonging to a user.
func (c *Client) UserOrders(ctx context.Context, userID int64) ([]Order, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), nil)
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := decodeJSON(resp, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id int64) (*Order, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := decodeJSON(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// CreateOrder creates an order from a draft. Pricing and inventory are
// entirely server-side; the response carries the computed totals.
func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (*Order, error) {
	resp, err := c.do(ctx, http.MethodPost, "/orders", draft)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := decodeJSON(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateOrder replaces the lines of an existing order.
func (c *Client) UpdateOrder(ctx context.Context, id int64, draft OrderDraft) (*Order, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), draft)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := decodeJSON(resp, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// DeleteOrder deletes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil)
	if err != nil {
		return err
	}

	return checkStatus(resp)
}

// Items lists the catalog.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	resp, err := c.do(ctx, http.MethodGet, "/orders/items", nil)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := decodeJSON(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}
