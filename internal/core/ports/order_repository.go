// Package ports defines the contracts between the domain core and
// infrastructure. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The per-order record is the serialization point for concurrent mutations:
// Update performs an optimistic compare-and-set on the aggregate's version, so
// two concurrent writers of the same order never both succeed.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the version the aggregate was loaded with: if a concurrent
	// writer committed first, Update fails with errs.ErrVersionIsInvalid and
	// the caller must re-read and re-validate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, loading the
	// current stored status. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstReadyForDispatch retrieves the oldest ReadyForPickup order
	// without an assigned rider. Used by the automatic dispatch job.
	GetFirstReadyForDispatch(ctx context.Context) (*order.Order, error)

	// GetActiveByRider retrieves the rider's current non-terminal order, if
	// any. This is the derived busy predicate: a rider is busy exactly when
	// this lookup finds an order. Returns errs.ErrObjectNotFound when the
	// rider is free.
	GetActiveByRider(ctx context.Context, riderID kernel.UUID) (*order.Order, error)
}
