package commands

import (
	"context"

	"foodorder/internal/core/domain/model/rider"
)

// ReportLocationCommandHandler ingests rider position reports into the
// location feed. The store keeps only the newest report per rider; a report
// older than the stored one is accepted and silently discarded, so retried
// or reordered submissions never fail.
type ReportLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewReportLocationCommandHandler creates a handler for location ingestion.
func NewReportLocationCommandHandler(uowFactory LocationUoWFactory) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one position report.
func (h *ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	loc, err := rider.NewLocation(cmd.RiderID(), cmd.Point(), cmd.RecordedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LocationRepository().UpsertLatest(ctx, loc); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
