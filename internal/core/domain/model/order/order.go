package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidTransition is returned when the requested status is not
	// reachable from the order's current status. Requesting the current
	// status again is also an invalid transition, never a silent success.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrActorNotAllowed is returned when the transition is legal but the
	// requesting actor's role is not permitted to drive it.
	ErrActorNotAllowed = errors.New("actor role is not allowed for this transition")

	// ErrRiderNotAssigned is returned when a transition requires an assigned
	// rider (entering OutForDelivery) and the order has none.
	ErrRiderNotAssigned = errors.New("order has no assigned rider")

	// ErrRiderAssignmentNotAllowed is returned when a rider is attached to an
	// order whose status does not admit one.
	ErrRiderAssignmentNotAllowed = errors.New("rider cannot be assigned in the order's current status")
)

// Order represents a customer's food order. It is the aggregate root that
// manages the order lifecycle from placement through delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid identifiers and a non-empty delivery address
//   - Must contain at least one item; the total is derived from the items at
//     creation and never recomputed afterwards
//   - Status transitions follow the table in transitionRoles; this aggregate
//     is the sole writer of the status value
//   - A rider is attached only while the order is ReadyForPickup or
//     OutForDelivery; terminal statuses release the rider
//   - statusUpdatedAt is refreshed on every accepted transition
//
// The version field supports optimistic concurrency in the repository layer:
// two concurrent mutations of the same order never both commit.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	items           []Item
	totalAmount     int64
	deliveryAddress string
	status          Status
	riderID         *kernel.UUID
	createdAt       time.Time
	statusUpdatedAt time.Time
	version         int64

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to place a valid order; the total amount is computed from the items
// at this point and does not change afterwards.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryAddress string,
) (*Order, error) {
	now := time.Now().UTC()

	o := &Order{
		status:          StatusPending,
		createdAt:       now,
		statusUpdatedAt: now,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.totalAmount += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// re-validated, including the consistency between status and rider assignment.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalAmount int64,
	deliveryAddress string,
	status Status,
	riderID *kernel.UUID,
	createdAt time.Time,
	statusUpdatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		totalAmount:     totalAmount,
		status:          status,
		createdAt:       createdAt,
		statusUpdatedAt: statusUpdatedAt,
		version:         version,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		idCopy := *riderID
		o.riderID = &idCopy
	}

	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%d is negative", totalAmount))
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns the order lines. The returned slice is a copy; mutating it
// does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total in cents, derived from the items at
// creation time.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// DeliveryAddress returns the opaque delivery address payload.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Rider returns the assigned rider's ID, or nil if no rider is assigned.
// Returns a copy so the assignment can only change through AssignRider and
// ReleaseRider.
func (o *Order) Rider() *kernel.UUID {
	if o.riderID == nil {
		return nil
	}
	riderID := *o.riderID
	return &riderID
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusUpdatedAt returns the timestamp of the last accepted transition.
func (o *Order) StatusUpdatedAt() time.Time {
	return o.statusUpdatedAt
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// TransitionTo applies a status transition requested by the given actor.
//
// The transition is validated against the current stored status: the edge must
// exist in the transition table (ErrInvalidTransition otherwise) and the actor
// must be permitted to drive it (ErrActorNotAllowed). Entering OutForDelivery
// additionally requires an assigned rider (ErrRiderNotAssigned).
//
// On success the status is updated, statusUpdatedAt is refreshed, and a
// transition into a terminal status releases the assigned rider.
func (o *Order) TransitionTo(target Status, actor Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateTransition(target, actor); err != nil {
		return err
	}

	if target == StatusOutForDelivery && o.riderID == nil {
		return fmt.Errorf("%w: cannot enter %s", ErrRiderNotAssigned, target)
	}

	o.status = target
	o.statusUpdatedAt = time.Now().UTC()

	if target.IsTerminal() {
		o.ReleaseRider()
	}

	return nil
}

// AssignRider attaches a rider to the order, overwriting any previous
// assignment. Allowed only while the order is ReadyForPickup (anticipatory
// assignment) or OutForDelivery (reassignment of an in-flight order).
//
// The rider-busy invariant is not checked here: whether the rider already
// holds another active order is a predicate over the whole order store and is
// enforced by the dispatch service.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.status != StatusReadyForPickup && o.status != StatusOutForDelivery {
		return fmt.Errorf("%w: order is %s", ErrRiderAssignmentNotAllowed, o.status)
	}

	o.riderID = &riderID
	return nil
}

// ReleaseRider detaches the assigned rider, freeing them for new assignments.
// Idempotent: releasing an unassigned order is a no-op, not an error.
func (o *Order) ReleaseRider() {
	o.riderID = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customerId: %w", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("restaurantId: %w", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
