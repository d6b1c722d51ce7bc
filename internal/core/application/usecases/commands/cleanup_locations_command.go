package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var ErrCleanupLocationsCommandIsNotConstructed = errors.New(
	"CleanupLocationsCommand must be created via NewCleanupLocationsCommand constructor",
)

// CleanupLocationsCommand triggers removal of stored positions for riders
// that no longer carry an active order. Positions only matter while a
// delivery is in flight.
type CleanupLocationsCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupLocationsCommand creates a new command to trigger location
// cleanup.
func NewCleanupLocationsCommand() CleanupLocationsCommand {
	return CleanupLocationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CleanupLocationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupLocationsCommandIsNotConstructed)
}
