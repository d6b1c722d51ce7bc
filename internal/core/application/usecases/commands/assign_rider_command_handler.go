package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// AssignRiderCommandHandler attaches a chosen rider to an order.
// Restaurant staff may assign riders to their own orders; admins to any.
// The rider-busy check and the write run in one transaction, and the order
// write is version-guarded, so two assignments racing for the same rider or
// order cannot both succeed.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.RiderDispatcher
}

// NewAssignRiderCommandHandler creates a handler for manual rider assignment.
func NewAssignRiderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.RiderDispatcher,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the rider assignment command.
// Surfaces services.ErrRiderBusy when the rider already carries an active
// order, and order.ErrRiderAssignmentNotAllowed when the order's status does
// not admit a rider.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	riderRepo := uow.RiderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Actor() == order.ActorRestaurant && !target.RestaurantID().IsEqual(cmd.ActorID()) {
		return order.ErrActorNotAllowed
	}

	candidate, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	holdsActiveOrder, err := riderHoldsActiveOrder(ctx, orderRepo, cmd.RiderID(), target)
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(target, candidate, holdsActiveOrder); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// riderHoldsActiveOrder resolves the busy predicate for the rider being
// assigned. Holding the target order itself does not count: reassigning the
// same rider is an idempotent no-op, not a conflict.
func riderHoldsActiveOrder(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	riderID kernel.UUID,
	target *order.Order,
) (bool, error) {
	active, err := orderRepo.GetActiveByRider(ctx, riderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return !active.IsEqual(target), nil
}
