package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusPreparing,
		order.StatusReadyForPickup,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusCancelled,
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.StatusUnknown:        "Unknown",
		order.StatusPending:        "Pending",
		order.StatusPreparing:      "Preparing",
		order.StatusReadyForPickup: "ReadyForPickup",
		order.StatusOutForDelivery: "OutForDelivery",
		order.StatusDelivered:      "Delivered",
		order.StatusCancelled:      "Cancelled",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			_, err := order.StatusFromString(name)

			require.Error(t, err, name)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range allStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("unknown and out-of-range values fail", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())

	for _, status := range []order.Status{
		order.StatusPending, order.StatusPreparing,
		order.StatusReadyForPickup, order.StatusOutForDelivery,
	} {
		assert.False(t, status.IsTerminal(), status.String())
	}
}

// TestStatus_TransitionTable walks the full from/to matrix so that any change
// to the transition data is caught immediately.
func TestStatus_TransitionTable(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.StatusPending:        {order.StatusPreparing, order.StatusCancelled},
		order.StatusPreparing:      {order.StatusReadyForPickup, order.StatusCancelled},
		order.StatusReadyForPickup: {order.StatusOutForDelivery},
		order.StatusOutForDelivery: {order.StatusDelivered},
		order.StatusDelivered:      {},
		order.StatusCancelled:      {},
	}

	isLegal := func(from, to order.Status) bool {
		for _, target := range legal[from] {
			if target == to {
				return true
			}
		}
		return false
	}

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			expected := isLegal(from, to)
			assert.Equal(t, expected, from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_AllowedTargets(t *testing.T) {
	t.Run("terminal statuses have no targets", func(t *testing.T) {
		assert.Empty(t, order.StatusDelivered.AllowedTargets())
		assert.Empty(t, order.StatusCancelled.AllowedTargets())
	})

	t.Run("pending has two targets", func(t *testing.T) {
		targets := order.StatusPending.AllowedTargets()

		assert.ElementsMatch(t,
			[]order.Status{order.StatusPreparing, order.StatusCancelled}, targets)
	})
}

// TestStatus_ValidateTransition_Roles checks the role matrix against every
// legal edge of the machine.
func TestStatus_ValidateTransition_Roles(t *testing.T) {
	type edge struct {
		from    order.Status
		to      order.Status
		allowed []order.Actor
	}

	edges := []edge{
		{order.StatusPending, order.StatusPreparing, []order.Actor{order.ActorRestaurant, order.ActorAdmin}},
		{order.StatusPending, order.StatusCancelled, []order.Actor{order.ActorRestaurant, order.ActorAdmin}},
		{order.StatusPreparing, order.StatusReadyForPickup, []order.Actor{order.ActorRestaurant, order.ActorAdmin}},
		{order.StatusPreparing, order.StatusCancelled, []order.Actor{order.ActorRestaurant, order.ActorAdmin}},
		{order.StatusReadyForPickup, order.StatusOutForDelivery, []order.Actor{order.ActorRider, order.ActorAdmin}},
		{order.StatusOutForDelivery, order.StatusDelivered, []order.Actor{order.ActorRider, order.ActorAdmin}},
	}

	actors := []order.Actor{
		order.ActorRestaurant, order.ActorRider, order.ActorAdmin, order.ActorCustomer,
	}

	for _, e := range edges {
		for _, actor := range actors {
			err := e.from.ValidateTransition(e.to, actor)

			permitted := false
			for _, a := range e.allowed {
				if a == actor {
					permitted = true
				}
			}

			if permitted {
				require.NoError(t, err, "%s: %s -> %s", actor, e.from, e.to)
			} else {
				require.ErrorIs(t, err, order.ErrActorNotAllowed,
					"%s: %s -> %s", actor, e.from, e.to)
			}
		}
	}
}

func TestStatus_ValidateTransition_Illegal(t *testing.T) {
	t.Run("illegal edge is InvalidTransition for any role", func(t *testing.T) {
		for _, actor := range []order.Actor{order.ActorRestaurant, order.ActorRider, order.ActorAdmin} {
			err := order.StatusPending.ValidateTransition(order.StatusDelivered, actor)

			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("reapplying current status is InvalidTransition", func(t *testing.T) {
		for _, status := range allStatuses() {
			err := status.ValidateTransition(status, order.ActorAdmin)

			require.ErrorIs(t, err, order.ErrInvalidTransition, status.String())
		}
	})

	t.Run("admin cannot escape terminal states", func(t *testing.T) {
		for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
			for _, target := range allStatuses() {
				if target == terminal {
					continue
				}
				err := terminal.ValidateTransition(target, order.ActorAdmin)

				require.ErrorIs(t, err, order.ErrInvalidTransition,
					"%s -> %s", terminal, target)
			}
		}
	})

	t.Run("invalid target status is rejected before legality", func(t *testing.T) {
		err := order.StatusPending.ValidateTransition(order.StatusUnknown, order.ActorAdmin)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid actor is rejected", func(t *testing.T) {
		err := order.StatusPending.ValidateTransition(order.StatusPreparing, order.ActorUnknown)

		require.Error(t, err)
	})
}

func TestStatus_ValidateCanHaveRider(t *testing.T) {
	t.Run("rider allowed only while ready or out for delivery", func(t *testing.T) {
		require.NoError(t, order.StatusReadyForPickup.ValidateCanHaveRider(true))
		require.NoError(t, order.StatusOutForDelivery.ValidateCanHaveRider(true))

		for _, status := range []order.Status{
			order.StatusPending, order.StatusPreparing,
			order.StatusDelivered, order.StatusCancelled,
		} {
			require.Error(t, status.ValidateCanHaveRider(true), status.String())
		}
	})

	t.Run("out for delivery requires a rider", func(t *testing.T) {
		require.Error(t, order.StatusOutForDelivery.ValidateCanHaveRider(false))
	})

	t.Run("no rider is fine elsewhere", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusPending, order.StatusPreparing, order.StatusReadyForPickup,
			order.StatusDelivered, order.StatusCancelled,
		} {
			require.NoError(t, status.ValidateCanHaveRider(false), status.String())
		}
	})
}

func TestActorFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		cases := map[string]order.Actor{
			"restaurant": order.ActorRestaurant,
			"rider":      order.ActorRider,
			"admin":      order.ActorAdmin,
			"customer":   order.ActorCustomer,
		}

		for name, expected := range cases {
			actor, err := order.ActorFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, actor)
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		for _, name := range []string{"", "Admin", "unknown", "courier"} {
			_, err := order.ActorFromString(name)

			require.Error(t, err, name)
		}
	})
}
