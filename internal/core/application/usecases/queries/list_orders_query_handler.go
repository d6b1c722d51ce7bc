package queries

import (
	"context"
	"database/sql"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order listings straight from the database.
// The rider contact summary is joined in the same statement, and the
// per-status counts are tallied from the returned rows, so one read serves
// the whole response.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Rows come back most recently created first, with id as the stable secondary
// key so two orders created in the same instant keep a deterministic order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	scopeColumn := map[OrderScope]string{
		ScopeRestaurant: "o.restaurant_id",
		ScopeRider:      "o.rider_id",
		ScopeCustomer:   "o.customer_id",
	}[query.Scope()]

	stmt := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.status,
			o.total_amount,
			o.delivery_address,
			o.created_at,
			o.status_updated_at,
			r.id,
			r.name,
			r.phone
		FROM orders o
		LEFT JOIN riders r ON r.id = o.rider_id
		WHERE ` + scopeColumn + ` = ?`
	args := []any{query.ScopeID().Bytes()}

	if query.Status() != nil {
		stmt += " AND o.status = ?"
		args = append(args, int(*query.Status()))
	}
	stmt += " ORDER BY o.created_at DESC, o.id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := ListOrdersQueryResponse{
		Orders:       make([]OrderSummary, 0),
		StatusCounts: make(map[string]int),
	}

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}

		response.Orders = append(response.Orders, summary)
		response.StatusCounts[summary.Status]++
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return response, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary         OrderSummary
		id              uuid.UUID
		customerID      uuid.UUID
		restaurantID    uuid.UUID
		status          int
		createdAt       time.Time
		statusUpdatedAt time.Time
		riderID         *uuid.UUID
		riderName       sql.NullString
		riderPhone      sql.NullString
	)

	err := rows.Scan(
		&id,
		&customerID,
		&restaurantID,
		&status,
		&summary.TotalAmount,
		&summary.DeliveryAddress,
		&createdAt,
		&statusUpdatedAt,
		&riderID,
		&riderName,
		&riderPhone,
	)
	if err != nil {
		return OrderSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderSummary{}, err
	}

	summary.Status = order.Status(status).String()
	summary.CreatedAt = createdAt
	summary.StatusUpdatedAt = statusUpdatedAt

	if riderID != nil {
		rID, idErr := kernel.UUIDFromBytes((*riderID)[:])
		if idErr != nil {
			return OrderSummary{}, idErr
		}
		summary.Rider = &RiderSummary{
			ID:    rID,
			Name:  riderName.String,
			Phone: riderPhone.String,
		}
	}

	return summary, nil
}
