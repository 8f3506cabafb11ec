// Package view renders command results for the terminal. It is presentation
// only: no state, no API calls, no independent invariants.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/riloidx/orderfront/internal/front/session"
	"github.com/riloidx/orderfront/pkg/ordersdk"
)

// Renderer writes human-readable output. Errors go to Err so piped stdout
// stays clean.
type Renderer struct {
	Out io.Writer
	Err io.Writer
}

func NewRenderer(out, errOut io.Writer) *Renderer {
	return &Renderer{Out: out, Err: errOut}
}

// Successf prints a confirmation line.
func (r *Renderer) Successf(format string, args ...any) {
	fmt.Fprintf(r.Out, format+"\n", args...)
}

// Error prints a failure banner.
func (r *Renderer) Error(msg string) {
	fmt.Fprintf(r.Err, "Error: %s\n", msg)
}

// Identity renders the current session, the terminal take on the home page's
// account box.
func (r *Renderer) Identity(s session.Snapshot) {
	if !s.Authenticated {
		fmt.Fprintln(r.Out, "Not logged in.")
		return
	}
	fmt.Fprintf(r.Out, "Logged in as %s (user #%d)\n", s.Login, s.UserID)
}

// Orders renders the order listing.
func (r *Renderer) Orders(orders []ordersdk.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(r.Out, "No orders yet.")
		return
	}

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", o.ID, o.Status, len(o.OrderItems), Currency(o.TotalPrice))
	}
	w.Flush()
}

// OrderDetail renders a single order with its lines.
func (r *Renderer) OrderDetail(o *ordersdk.Order) {
	fmt.Fprintf(r.Out, "Order #%d  %s\n", o.ID, o.Status)
	fmt.Fprintf(r.Out, "Customer: %s %s\n\n", o.User.Name, o.User.Surname)

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tPRICE\tQTY\tSUBTOTAL")
	for _, line := range o.OrderItems {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			line.Name, Currency(line.Price), line.Quantity, Currency(line.Price*float64(line.Quantity)))
	}
	w.Flush()

	fmt.Fprintf(r.Out, "\nTotal: %s\n", Currency(o.TotalPrice))
}

// Items renders the catalog.
func (r *Renderer) Items(items []ordersdk.Item) {
	if len(items) == 0 {
		fmt.Fprintln(r.Out, "The catalog is empty.")
		return
	}

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\n", item.ID, item.Name, Currency(item.Price))
	}
	w.Flush()
}

// Payments renders the payment history.
func (r *Renderer) Payments(payments []ordersdk.Payment) {
	if len(payments) == 0 {
		fmt.Fprintln(r.Out, "No payments yet.")
		return
	}

	w := tabwriter.NewWriter(r.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tSTATUS\tAMOUNT\tWHEN")
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.OrderID, p.Status, Currency(p.PaymentAmount), DateTime(p.Timestamp))
	}
	w.Flush()
}

// Payment renders the outcome of a single payment attempt.
func (r *Renderer) Payment(p *ordersdk.Payment) {
	fmt.Fprintf(r.Out, "Payment %s for order #%d: %s (%s)\n",
		p.ID, p.OrderID, p.Status, Currency(p.PaymentAmount))
}
