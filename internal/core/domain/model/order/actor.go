package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Actor identifies the role requesting a status transition. Roles come from
// the external auth collaborator; the state machine only consults them against
// the transition-role table.
type Actor int

const (
	// ActorUnknown represents an invalid or undefined actor role.
	ActorUnknown Actor = iota

	// ActorRestaurant is restaurant staff: accepts orders, marks them ready,
	// and may cancel before handoff.
	ActorRestaurant

	// ActorRider is the delivery agent: picks up and delivers orders.
	ActorRider

	// ActorAdmin is platform staff and may force any legal transition.
	ActorAdmin

	// ActorCustomer placed the order. Customers never drive transitions (the
	// role matrix lists none for them) but read their own orders and track
	// their assigned rider.
	ActorCustomer
)

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorUnknown:    "unknown",
		ActorRestaurant: "restaurant",
		ActorRider:      "rider",
		ActorAdmin:      "admin",
		ActorCustomer:   "customer",
	}
}

func getValidActorStrings() map[Actor]string {
	//nolint:exhaustive // ActorUnknown is intentionally excluded as it's invalid
	return map[Actor]string{
		ActorRestaurant: "restaurant",
		ActorRider:      "rider",
		ActorAdmin:      "admin",
		ActorCustomer:   "customer",
	}
}

// ActorFromString parses an actor role from its string representation.
func ActorFromString(s string) (Actor, error) {
	for actor, name := range getValidActorStrings() {
		if name == s {
			return actor, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
		"actorRole", fmt.Errorf("%q is not a valid actor role", s))
}

// Validate checks if the Actor value is a member of the enumeration.
func (a Actor) Validate() error {
	if _, ok := getValidActorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"actorRole", fmt.Errorf("%d is not a valid actor role", a))
	}
	return nil
}

// String returns the lowercase role name. Implements fmt.Stringer.
func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return "unknown"
}
