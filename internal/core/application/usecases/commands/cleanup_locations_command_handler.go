package commands

import (
	"context"
)

// CleanupLocationsCommandHandler removes location rows for riders without an
// active order.
type CleanupLocationsCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCleanupLocationsCommandHandler creates a handler for location cleanup.
func NewCleanupLocationsCommandHandler(uowFactory LocationUoWFactory) CleanupLocationsCommandHandler {
	return CleanupLocationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup command and returns the number of removed
// rows.
func (h *CleanupLocationsCommandHandler) Handle(ctx context.Context, cmd CleanupLocationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.LocationRepository().DeleteWithoutActiveOrder(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
