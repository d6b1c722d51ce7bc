package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow. The transition table and the roles
// allowed to drive each transition are expressed as data (see transitionRoles),
// keeping the guard logic exhaustive and easy to test against the full table.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is placed.
	// The restaurant has not started working on it yet.
	StatusPending

	// StatusPreparing indicates the restaurant accepted the order and is
	// preparing it.
	StatusPreparing

	// StatusReadyForPickup indicates the order is packed and waiting for a
	// rider. A rider may already be attached in anticipation of pickup.
	StatusReadyForPickup

	// StatusOutForDelivery indicates the assigned rider picked the order up
	// and is on the way to the customer. Requires a rider.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// Terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before it left the
	// restaurant. Terminal state; reachable from Pending and Preparing only.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including the invalid Unknown value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusPreparing:      "Preparing",
		StatusReadyForPickup: "ReadyForPickup",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "Pending",
		StatusPreparing:      "Preparing",
		StatusReadyForPickup: "ReadyForPickup",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// transition is a directed edge in the status graph.
type transition struct {
	from Status
	to   Status
}

// transitionRoles is the single source of truth for the state machine: the
// keys enumerate every legal transition, the values list the actor roles
// allowed to drive it. ActorAdmin may force any legal transition and is
// therefore not listed explicitly.
func transitionRoles() map[transition][]Actor {
	return map[transition][]Actor{
		{StatusPending, StatusPreparing}:             {ActorRestaurant},
		{StatusPending, StatusCancelled}:             {ActorRestaurant},
		{StatusPreparing, StatusReadyForPickup}:      {ActorRestaurant},
		{StatusPreparing, StatusCancelled}:           {ActorRestaurant},
		{StatusReadyForPickup, StatusOutForDelivery}: {ActorRider},
		{StatusOutForDelivery, StatusDelivered}:      {ActorRider},
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown or invalid status names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a member of the enumeration.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether target is a legal next status.
// Requesting the current status again is not a legal transition.
func (s Status) CanTransitionTo(target Status) bool {
	_, ok := transitionRoles()[transition{from: s, to: target}]
	return ok
}

// AllowedTargets returns the set of statuses reachable from s in one step.
// Useful for exhaustive testing of the transition table.
func (s Status) AllowedTargets() []Status {
	var targets []Status
	for tr := range transitionRoles() {
		if tr.from == s {
			targets = append(targets, tr.to)
		}
	}
	return targets
}

// ValidateTransition checks both the legality of the s -> target edge and the
// actor's permission to drive it. Legality is checked first, so an illegal
// transition is reported as ErrInvalidTransition even for a mismatched role.
func (s Status) ValidateTransition(target Status, actor Actor) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	roles, ok := transitionRoles()[transition{from: s, to: target}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	if actor == ActorAdmin {
		return nil
	}

	for _, role := range roles {
		if role == actor {
			return nil
		}
	}

	return fmt.Errorf("%w: %s may not drive %s -> %s", ErrActorNotAllowed, actor, s, target)
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment. A rider may be attached only while the order is
// ReadyForPickup or OutForDelivery, and OutForDelivery requires one.
func (s Status) ValidateCanHaveRider(hasRider bool) error {
	if hasRider && s != StatusReadyForPickup && s != StatusOutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a rider", s),
		)
	}

	if !hasRider && s == StatusOutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s requires an assigned rider", s),
		)
	}

	return nil
}
