package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// StatusChange describes a committed status transition for downstream
// notification (push/email to the affected parties).
type StatusChange struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	RiderID      *kernel.UUID
	Status       order.Status
	ChangedAt    time.Time
}

// StatusNotifier delivers status-change notifications to an external
// collaborator. Invoked fire-and-forget after a successful transition:
// failures are logged by the caller and never roll back or fail the
// already-committed transition.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, change StatusChange) error
}
