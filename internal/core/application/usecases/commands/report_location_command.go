package commands

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand represents a rider position report. Reports carry the
// rider-side timestamp so the feed can order them by when they were taken,
// not by when they arrived.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	riderID    kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command carrying one position report.
// Coordinate bounds are enforced by the GeoPoint the caller constructs.
func NewReportLocationCommand(
	riderID kernel.UUID,
	point kernel.GeoPoint,
	recordedAt time.Time,
) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setPoint(point),
		cmd.setRecordedAt(recordedAt),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// RiderID returns the reporting rider's identifier.
func (c ReportLocationCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Point returns the reported coordinates.
func (c ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// RecordedAt returns the rider-reported timestamp.
func (c ReportLocationCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *ReportLocationCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *ReportLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *ReportLocationCommand) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}

	c.recordedAt = recordedAt
	return nil
}
