package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider profile to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider profile.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider by its unique identifier.
	// Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAllFree retrieves riders that are marked available and do not hold
	// an active (non-terminal) order. Busy-ness is computed over the order
	// store, not read from a stored flag.
	GetAllFree(ctx context.Context) ([]*rider.Rider, error)
}
