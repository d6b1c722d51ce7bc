package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRiderLocationQueryHandler reads the location feed with visibility
// enforcement. Customers and restaurants see a rider only while that rider
// carries one of their active orders; riders see themselves; admins see
// everyone. Every denial and every miss surfaces as ErrLocationUnavailable.
type GetRiderLocationQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderLocationQueryHandler creates a handler for location lookups.
func NewGetRiderLocationQueryHandler(db *gorm.DB) GetRiderLocationQueryHandler {
	return GetRiderLocationQueryHandler{db: db}
}

// Handle executes the location lookup.
func (h GetRiderLocationQueryHandler) Handle(
	ctx context.Context,
	query GetRiderLocationQuery,
) (GetRiderLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRiderLocationQueryResponse{}, err
	}

	visible, err := h.riderVisibleTo(ctx, query)
	if err != nil {
		return GetRiderLocationQueryResponse{}, err
	}
	if !visible {
		return GetRiderLocationQueryResponse{}, ErrLocationUnavailable
	}

	var (
		lat        float64
		lng        float64
		recordedAt time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT lat, lng, recorded_at
		FROM rider_locations
		WHERE rider_id = ?
	`, query.RiderID().Bytes()).Row()

	err = row.Scan(&lat, &lng, &recordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRiderLocationQueryResponse{}, ErrLocationUnavailable
	}
	if err != nil {
		return GetRiderLocationQueryResponse{}, err
	}

	return GetRiderLocationQueryResponse{
		RiderID:    query.RiderID(),
		Lat:        lat,
		Lng:        lng,
		RecordedAt: recordedAt,
	}, nil
}

// riderVisibleTo resolves the viewer's scope against the order store.
func (h *GetRiderLocationQueryHandler) riderVisibleTo(
	ctx context.Context,
	query GetRiderLocationQuery,
) (bool, error) {
	viewer := query.Viewer()

	var ownerColumn string
	switch viewer.Role {
	case order.ActorAdmin:
		return true, nil
	case order.ActorRider:
		return viewer.ID.IsEqual(query.RiderID()), nil
	case order.ActorRestaurant:
		ownerColumn = "restaurant_id"
	case order.ActorCustomer:
		ownerColumn = "customer_id"
	case order.ActorUnknown:
		return false, nil
	default:
		return false, nil
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1)
		FROM orders
		WHERE rider_id = ? AND `+ownerColumn+` = ? AND status NOT IN ?
	`, query.RiderID().Bytes(), viewer.ID.Bytes(),
		[]int{int(order.StatusDelivered), int(order.StatusCancelled)}).
		Scan(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
