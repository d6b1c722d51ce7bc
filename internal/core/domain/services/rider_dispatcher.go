package services

import (
	"errors"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rider"
)

var (
	// ErrNoRiderAvailable is returned when no rider can take the order:
	// either no candidates were provided or none is marked available.
	ErrNoRiderAvailable = errors.New("no rider available")

	// ErrRiderBusy is returned when the chosen rider already holds an active
	// (non-terminal) order. A rider carries at most one active order at a
	// time.
	ErrRiderBusy = errors.New("rider already holds an active order")
)

// SelectionPolicy picks one rider out of the free candidates for an order.
// The source material leaves the automatic selection algorithm open (nearest,
// least-recently-used, round robin, ...), so the policy is pluggable; the
// dispatcher only enforces the assignment invariants around whatever the
// policy decides.
type SelectionPolicy interface {
	// Select returns the chosen rider or nil when no candidate suits.
	Select(o *order.Order, candidates []*rider.Rider) *rider.Rider
}

// FirstAvailablePolicy is the default selection policy: it picks the first
// candidate in the given order.
type FirstAvailablePolicy struct{}

// Select returns the first candidate, or nil for an empty slice.
func (FirstAvailablePolicy) Select(_ *order.Order, candidates []*rider.Rider) *rider.Rider {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// RiderDispatcher is the domain service that attaches a rider to an order
// ready for delivery.
//
// A rider's busy state is a predicate derived from the order store ("does any
// non-terminal order carry this rider's id"), not a flag owned by this
// service; callers resolve it through the repositories and hand the result in.
//
// Business rules:
//   - The order must admit a rider (ReadyForPickup or OutForDelivery)
//   - Only available riders are considered
//   - A rider with an active order elsewhere is rejected as busy
//   - Which free rider wins is delegated to the SelectionPolicy
type RiderDispatcher struct {
	policy SelectionPolicy
}

// NewRiderDispatcher creates a dispatcher with the given selection policy.
// A nil policy falls back to FirstAvailablePolicy.
func NewRiderDispatcher(policy SelectionPolicy) RiderDispatcher {
	if policy == nil {
		policy = FirstAvailablePolicy{}
	}
	return RiderDispatcher{policy: policy}
}

// Dispatch selects a rider for the order and assigns it (automatic dispatch).
// The candidates are the free riders: available and without an active order.
// Returns the assigned rider, or ErrNoRiderAvailable when no candidate is
// marked available or the policy declines them all.
func (d RiderDispatcher) Dispatch(o *order.Order, candidates []*rider.Rider) (*rider.Rider, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	available := make([]*rider.Rider, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}
		available = append(available, c)
	}

	selected := d.policy.Select(o, available)
	if selected == nil {
		return nil, ErrNoRiderAvailable
	}

	if err := o.AssignRider(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// Assign attaches a specific rider to the order (manual assignment by
// restaurant or admin staff, or the auto-dispatcher acting on a policy
// decision). holdsActiveOrder is the resolved busy predicate for the rider;
// a busy rider is rejected with ErrRiderBusy, an unavailable one with
// ErrNoRiderAvailable.
func (d RiderDispatcher) Assign(o *order.Order, r *rider.Rider, holdsActiveOrder bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if !r.IsAvailable() {
		return ErrNoRiderAvailable
	}

	if holdsActiveOrder {
		return ErrRiderBusy
	}

	return o.AssignRider(r.ID())
}
