// Package notify implements the outbound status notification port.
//
// The platform's real push/email delivery lives in a separate system; this
// adapter stands in for it by emitting a structured log line per committed
// status change. Swapping in a queue- or webhook-backed implementation only
// requires satisfying ports.StatusNotifier.
package notify

import (
	"context"
	"log/slog"

	"foodorder/internal/core/ports"
)

// SlogStatusNotifier logs committed status changes with structured fields.
type SlogStatusNotifier struct {
	logger *slog.Logger
}

// NewSlogStatusNotifier creates a notifier backed by the given logger.
func NewSlogStatusNotifier(logger *slog.Logger) *SlogStatusNotifier {
	return &SlogStatusNotifier{logger: logger}
}

// NotifyStatusChanged emits one record per status change. It never fails:
// notification is best-effort and must not disturb the committed transition.
func (n *SlogStatusNotifier) NotifyStatusChanged(ctx context.Context, change ports.StatusChange) error {
	attrs := []any{
		"order_id", change.OrderID.String(),
		"customer_id", change.CustomerID.String(),
		"restaurant_id", change.RestaurantID.String(),
		"status", change.Status.String(),
		"changed_at", change.ChangedAt,
	}
	if change.RiderID != nil {
		attrs = append(attrs, "rider_id", change.RiderID.String())
	}

	n.logger.InfoContext(ctx, "order status changed", attrs...)
	return nil
}
