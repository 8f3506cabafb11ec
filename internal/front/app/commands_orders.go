package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/riloidx/orderfront/internal/front/view"
	"github.com/riloidx/orderfront/pkg/ordersdk"
)

// itemsFlag collects repeated --item id:qty flags into draft lines.
type itemsFlag []ordersdk.OrderDraftItem

func (f *itemsFlag) String() string {
	parts := make([]string, 0, len(*f))
	for _, item := range *f {
		parts = append(parts, fmt.Sprintf("%d:%d", item.ItemID, item.Quantity))
	}
	return strings.Join(parts, ",")
}

func (f *itemsFlag) Set(value string) error {
	idPart, qtyPart, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("expected id:quantity, got %q", value)
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", idPart)
	}
	qty, err := strconv.Atoi(qtyPart)
	if err != nil || qty < 1 {
		return fmt.Errorf("invalid quantity %q", qtyPart)
	}

	*f = append(*f, ordersdk.OrderDraftItem{ItemID: id, Quantity: qty})
	return nil
}

func (a *App) cmdItems(ctx context.Context, _ []string) error {
	items, err := a.api.Items(ctx)
	if err != nil {
		a.view.Error(view.Message(err, "Failed to load items"))
		return err
	}

	a.view.Items(items)
	return nil
}

func (a *App) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listOrders(ctx)
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		return a.showOrder(ctx, rest)
	case "create":
		return a.createOrder(ctx, rest)
	case "update":
		return a.updateOrder(ctx, rest)
	case "delete":
		return a.deleteOrder(ctx, rest)
	default:
		a.view.Error(fmt.Sprintf("unknown orders subcommand %q", sub))
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}

func (a *App) listOrders(ctx context.Context) error {
	orders, err := a.api.UserOrders(ctx, a.sessions.Current().UserID)
	if err != nil {
		a.view.Error(view.Message(err, "Failed to load orders"))
		return err
	}

	a.view.Orders(orders)
	return nil
}

func (a *App) showOrder(ctx context.Context, args []string) error {
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

	a.view.OrderDetail(order)
	return nil
}

func (a *App) createOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders create", flag.ContinueOnError)
	var items itemsFlag
	fs.Var(&items, "item", "ordered line as itemID:quantity (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(items) == 0 {
		a.view.Error("at least one --item id:qty is required")
		return fmt.Errorf("empty order")
	}

	order, err := a.api.CreateOrder(ctx, ordersdk.OrderDraft{
		UserID: a.sessions.Current().UserID,
		Items:  items,
	})
	if err != nil {
		a.view.Error(view.Message(err, "Failed to create order"))
		return err
	}

	a.view.Successf("Created order #%d (%s).", order.ID, view.Currency(order.TotalPrice))
	return nil
}

func (a *App) updateOrder(ctx context.Context, args []string) error {
	id, err := parseOrderID(args)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}

	fs := flag.NewFlagSet("orders update", flag.ContinueOnError)
	var items itemsFlag
	fs.Var(&items, "item", "ordered line as itemID:quantity (repeatable)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if len(items) == 0 {
		a.view.Error("at least one --item id:qty is required")
		return fmt.Errorf("empty order")
	}

	order, err := a.api.UpdateOrder(ctx, id, ordersdk.OrderDraft{
		UserID: a.sessions.Current().UserID,
		Items:  items,
	})
	if err != nil {
		a.view.Error(view.Message(err, "Failed to update order"))
		return err
	}

	a.view.Successf("Updated order #%d (%s).", order.ID, view.Currency(order.TotalPrice))
	return nil
}

func (a *App) deleteOrder(ctx context.Context, args []string) error {
	id, err := parseOrderID(args)
	if err != nil {
		a.view.Error(err.Error())
		return err
	}

	if err := a.api.DeleteOrder(ctx, id); err != nil {
		a.view.Error(view.Message(err, "Failed to delete order"))
		return err
	}

	a.view.Successf("Deleted order #%d.", id)
	return nil
}

func parseOrderID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("an order id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", args[0])
	}
	return id, nil
}
