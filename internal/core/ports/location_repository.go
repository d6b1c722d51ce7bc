package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rider"
)

// LocationRepository defines the persistence contract for the rider location
// feed. Only the latest position per rider is retained; no trajectory log.
type LocationRepository interface {
	// UpsertLatest stores the report if it is not older than the currently
	// stored position for that rider (last writer wins by reported
	// timestamp). Stale reports are discarded silently: out-of-order
	// delivery from network retries is expected and harmless, so this is
	// never an error.
	UpsertLatest(ctx context.Context, loc rider.Location) error

	// GetLatest retrieves the newest stored position for the rider.
	// Returns errs.ErrObjectNotFound when the rider has never reported.
	GetLatest(ctx context.Context, riderID kernel.UUID) (rider.Location, error)

	// DeleteWithoutActiveOrder removes stored positions of riders that hold
	// no active order. Returns the number of rows removed.
	DeleteWithoutActiveOrder(ctx context.Context) (int64, error)
}
