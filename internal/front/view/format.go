package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/riloidx/orderfront/pkg/ordersdk"
)

// Currency renders an amount the way the web front-end did: "$12.50".
func Currency(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// timestampLayouts covers the datetime shapes the server has been seen to
// emit: zone-less local datetimes with or without fractional seconds, plus
// RFC3339 in case it ever grows a zone.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// DateTime renders a server timestamp for display. Unparseable values pass
// through untouched rather than erroring; this is presentation only.
func DateTime(raw string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return raw
}

// Message resolves the user-visible text for a failed action: the server's
// own message when its error payload carries one, the given per-action
// fallback otherwise. Network failures and message-less server errors all
// land on the fallback.
func Message(err error, fallback string) string {
	var apiErr *ordersdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
