package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrDispatchRiderCommandIsNotConstructed = errors.New(
	"DispatchRiderCommand must be created via NewDispatchRiderCommand constructor",
)

// DispatchRiderCommand triggers automatic dispatch: the oldest unassigned
// ReadyForPickup order is matched with a free rider. Parameterless; the
// matching itself is the handler's job.
type DispatchRiderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchRiderCommand creates a new command to trigger automatic
// dispatch.
func NewDispatchRiderCommand() DispatchRiderCommand {
	return DispatchRiderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchRiderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchRiderCommandIsNotConstructed)
}
