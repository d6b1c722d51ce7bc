package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies a status transition to an order.
//
// The sequencing contract: the order is re-read inside the transaction, the
// transition is validated against the freshly read status, and the write is
// guarded by the order's version. A request that raced a concurrent writer
// fails with errs.ErrVersionIsInvalid rather than validating against stale
// state; a request whose transition is illegal from the current status fails
// with order.ErrInvalidTransition even if it would have been legal from the
// status the caller last saw.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.StatusNotifier
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status change command.
// After a successful commit the status notifier is invoked best-effort: a
// notification failure is logged and never undoes or fails the transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = verifyActorScope(target, cmd.Actor(), cmd); err != nil {
		return err
	}

	if err = target.TransitionTo(cmd.Target(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, target)
	return nil
}

func (h *ChangeOrderStatusCommandHandler) notify(ctx context.Context, o *order.Order) {
	change := ports.StatusChange{
		OrderID:      o.ID(),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.RestaurantID(),
		RiderID:      o.Rider(),
		Status:       o.Status(),
		ChangedAt:    time.Now().UTC(),
	}

	if err := h.notifier.NotifyStatusChanged(ctx, change); err != nil {
		h.logger.WarnContext(ctx, "status notification failed",
			"order_id", o.ID().String(), "error", err)
	}
}

// verifyActorScope checks that the caller acts on its own order: restaurant
// staff on orders of their restaurant, riders on orders currently assigned to
// them. Admins are exempt.
func verifyActorScope(o *order.Order, actor order.Actor, cmd ChangeOrderStatusCommand) error {
	switch actor {
	case order.ActorRestaurant:
		if !o.RestaurantID().IsEqual(cmd.ActorID()) {
			return order.ErrActorNotAllowed
		}
	case order.ActorRider:
		if o.Rider() == nil || !o.Rider().IsEqual(cmd.ActorID()) {
			return order.ErrActorNotAllowed
		}
	case order.ActorAdmin, order.ActorCustomer, order.ActorUnknown:
		// Customers hold no transition rights in the role matrix; the
		// aggregate rejects them regardless of scope.
	}

	return nil
}
