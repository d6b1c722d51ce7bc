package locationrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/rider"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// UpsertLatest stores the report unless a newer one is already present.
// Last writer wins by the rider-reported timestamp: the conflict clause only
// applies the update when the stored row is not newer than the incoming one,
// so stale reports from delayed retries fall through without an error.
func (r *GormLocationRepository) UpsertLatest(ctx context.Context, loc rider.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(loc)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "rider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "recorded_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "rider_locations.recorded_at <= excluded.recorded_at"},
		}},
	}).Create(&dto).Error
}

// GetLatest retrieves the newest stored position for the rider.
func (r *GormLocationRepository) GetLatest(ctx context.Context, riderID kernel.UUID) (rider.Location, error) {
	if err := riderID.Validate(); err != nil {
		return rider.Location{}, err
	}

	var dto RiderLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "rider_id = ?", riderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rider.Location{}, errs.NewObjectNotFoundError("riderLocation", riderID.String())
		}
		return rider.Location{}, err
	}

	return toDomain(dto)
}

// DeleteWithoutActiveOrder removes positions of riders that hold no active
// order. Positions only matter while an order is in flight, so this keeps the
// feed from accumulating rows for idle riders.
func (r *GormLocationRepository) DeleteWithoutActiveOrder(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE orders.rider_id = rider_locations.rider_id AND orders.status NOT IN ?)",
			[]int{int(order.StatusDelivered), int(order.StatusCancelled)}).
		Delete(&RiderLocationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
