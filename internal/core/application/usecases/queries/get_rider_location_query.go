package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetRiderLocationQueryIsNotConstructed = errors.New(
		"GetRiderLocationQuery must be created via NewGetRiderLocationQuery constructor",
	)

	// ErrLocationUnavailable means there is nothing to show the viewer: the
	// rider has never reported, or no active order links the rider to the
	// viewer. Both cases look identical on purpose, so a caller cannot probe
	// for riders outside its scope.
	ErrLocationUnavailable = errors.New("rider location unavailable")
)

// Viewer identifies who is asking for a rider's position. Visibility is
// scoped: customers and restaurants only see the rider currently carrying
// their own active order.
type Viewer struct {
	Role order.Actor
	ID   kernel.UUID
}

// GetRiderLocationQuery retrieves the latest position of a rider, subject to
// the viewer's visibility scope.
type GetRiderLocationQuery struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	viewer  Viewer

	guard guard.ConstructorGuard
}

// NewGetRiderLocationQuery creates a location lookup for the given viewer.
func NewGetRiderLocationQuery(riderID kernel.UUID, viewer Viewer) (GetRiderLocationQuery, error) {
	if err := errors.Join(
		riderID.Validate(),
		viewer.Role.Validate(),
		viewer.ID.Validate(),
	); err != nil {
		return GetRiderLocationQuery{}, err
	}

	return GetRiderLocationQuery{
		riderID: riderID,
		viewer:  viewer,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderLocationQueryIsNotConstructed)
}

// RiderID returns the rider whose position is requested.
func (q GetRiderLocationQuery) RiderID() kernel.UUID {
	return q.riderID
}

// Viewer returns who is asking.
func (q GetRiderLocationQuery) Viewer() Viewer {
	return q.viewer
}

// GetRiderLocationQueryResponse is the latest visible position of a rider.
type GetRiderLocationQueryResponse struct {
	RiderID    kernel.UUID
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}
