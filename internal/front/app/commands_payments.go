package app

import (
	"context"
	"fmt"

	"github.com/riloidx/orderfront/internal/front/view"
	"github.com/riloidx/orderfront/pkg/ordersdk"
)

func (a *App) cmdPay(ctx context.Context, args []string) error {
	id, err := parseOrderID(args)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}

	order, err := a.api.Order(ctx, id)
	if err != nil {
		a.view.Error(view.Message(err, "Failed to load order"))
		return err
	}

	// Only pending orders are payable; confirmed ones are already paid.
	if order.Status != ordersdk.OrderPending {
		a.view.Error("This order cannot be paid. It may already be paid or cancelled.")
		return fmt.Errorf("order %d is %s", order.ID, order.Status)
	}

	payment, err := a.api.CreatePayment(ctx, ordersdk.PaymentDraft{
		OrderID:       order.ID,
		UserID:        a.sessions.Current().UserID,
		PaymentAmount: order.TotalPrice,
	})
	if err != nil {
		a.view.Error(view.Message(err, "Payment failed. Please try again."))
		return err
	}

	a.view.Payment(payment)
	return nil
}

func (a *App) cmdPayments(ctx context.Context, _ []string) error {
	payments, err := a.api.UserPayments(ctx, a.sessions.Current().UserID)
	if err != nil {
		a.view.Error(view.Message(err, "Failed to load payments"))
		return err
	}

	a.view.Payments(payments)
	return nil
}
