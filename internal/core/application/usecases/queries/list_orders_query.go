// Package queries contains read-side operations of the CQRS split. Query
// handlers read the database directly with raw SQL and return flat read
// models; they never mutate state and never block writers.
package queries

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderScope selects whose orders a listing returns.
type OrderScope int

const (
	// ScopeUnknown represents an invalid or undefined scope.
	ScopeUnknown OrderScope = iota

	// ScopeRestaurant lists orders placed at a restaurant.
	ScopeRestaurant

	// ScopeRider lists orders assigned to a rider.
	ScopeRider

	// ScopeCustomer lists orders placed by a customer.
	ScopeCustomer
)

// Validate checks if the scope is a member of the enumeration.
func (s OrderScope) Validate() error {
	switch s {
	case ScopeRestaurant, ScopeRider, ScopeCustomer:
		return nil
	case ScopeUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"scope", fmt.Errorf("%d is not a valid order scope", s))
}

// ListOrdersQuery retrieves the orders visible to one restaurant, rider, or
// customer, newest first, optionally narrowed to a single status.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	scope   OrderScope
	scopeID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the given scope. A nil status means
// no filter; a non-nil one must be a known status.
func NewListOrdersQuery(scope OrderScope, scopeID kernel.UUID, status *order.Status) (ListOrdersQuery, error) {
	if err := errors.Join(scope.Validate(), scopeID.Validate()); err != nil {
		return ListOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		scope:   scope,
		scopeID: scopeID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Scope returns whose orders to list.
func (q ListOrdersQuery) Scope() OrderScope {
	return q.scope
}

// ScopeID returns the owner identifier within the scope.
func (q ListOrdersQuery) ScopeID() kernel.UUID {
	return q.scopeID
}

// Status returns the optional status filter, nil when absent.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// RiderSummary is the contact card surfaced next to an in-flight order.
type RiderSummary struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// OrderSummary is one row of the listing. Rider is nil while no rider is
// assigned; the caller renders that as an explicit unassigned marker.
type OrderSummary struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Status          string
	TotalAmount     int64
	DeliveryAddress string
	CreatedAt       time.Time
	StatusUpdatedAt time.Time
	Rider           *RiderSummary
}

// ListOrdersQueryResponse carries the listing plus per-status counts computed
// from the same read, so the tallies can never disagree with the rows.
type ListOrdersQueryResponse struct {
	Orders       []OrderSummary
	StatusCounts map[string]int
}
