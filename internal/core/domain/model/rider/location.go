package rider

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a Location was not created via
// NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"rider location must be created via NewLocation constructor")

// Location is the latest reported position of a rider. Only the newest report
// per rider is retained; ordering is by the rider-reported timestamp, not by
// arrival order, so a report that lost a network race is simply discarded.
type Location struct { //nolint:recvcheck //using for validation
	riderID    kernel.UUID
	point      kernel.GeoPoint
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewLocation creates a validated rider position report.
func NewLocation(riderID kernel.UUID, point kernel.GeoPoint, recordedAt time.Time) (Location, error) {
	if err := errors.Join(riderID.Validate(), point.Validate()); err != nil {
		return Location{}, err
	}
	if recordedAt.IsZero() {
		return Location{}, errs.NewValueIsRequiredError("recordedAt")
	}

	return Location{
		riderID:    riderID,
		point:      point,
		recordedAt: recordedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// RiderID returns the reporting rider's identifier.
func (l Location) RiderID() kernel.UUID {
	return l.riderID
}

// Point returns the reported coordinates.
func (l Location) Point() kernel.GeoPoint {
	return l.point
}

// RecordedAt returns the rider-reported timestamp of the position.
// Whether a report supersedes the stored one is decided by the storage
// layer's guarded upsert, which compares these timestamps atomically.
func (l Location) RecordedAt() time.Time {
	return l.recordedAt
}
