package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

var (
	ErrNoFreeRidersFound = errors.New("no free riders found")
	ErrNoOrderFound      = errors.New("no order found")
)

// DispatchRiderCommandHandler orchestrates automatic dispatch. Finds the
// oldest order awaiting pickup and matches it with a free rider through the
// dispatcher's selection policy. Both the candidate read and the order write
// happen inside one transaction; the version guard on the order write keeps
// a concurrent manual assignment from being silently overwritten.
type DispatchRiderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.RiderDispatcher
}

// NewDispatchRiderCommandHandler creates a handler for automatic dispatch.
func NewDispatchRiderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.RiderDispatcher,
) DispatchRiderCommandHandler {
	return DispatchRiderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the automatic dispatch command.
// Returns ErrNoOrderFound when nothing awaits pickup and ErrNoFreeRidersFound
// when every rider is unavailable or busy; both are expected idle-cycle
// outcomes for the periodic job, not failures.
func (h DispatchRiderCommandHandler) Handle(ctx context.Context, cmd DispatchRiderCommand) error {
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

	target, err := orderRepo.GetFirstReadyForDispatch(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	riders, err := riderRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoFreeRidersFound
	}

	if _, err = h.dispatcher.Dispatch(target, riders); err != nil {
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
