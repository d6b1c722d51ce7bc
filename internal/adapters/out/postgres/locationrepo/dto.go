// Package locationrepo persists the rider location feed. The table keeps one
// row per rider holding only the freshest report.
package locationrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderLocationDTO represents the database structure for the latest known
// rider position. RiderID is the primary key: there is at most one row per
// rider by construction.
type RiderLocationDTO struct {
	RiderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat        float64
	Lng        float64
	RecordedAt time.Time
}

// TableName specifies the database table name for rider locations.
func (RiderLocationDTO) TableName() string {
	return "rider_locations"
}

// fromDomain converts a location report to its database representation.
func fromDomain(loc rider.Location) RiderLocationDTO {
	return RiderLocationDTO{
		RiderID:    loc.RiderID().Bytes(),
		Lat:        loc.Point().Lat(),
		Lng:        loc.Point().Lng(),
		RecordedAt: loc.RecordedAt(),
	}
}

// toDomain converts a database DTO to a location report.
func toDomain(dto RiderLocationDTO) (rider.Location, error) {
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return rider.Location{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return rider.Location{}, err
	}

	return rider.NewLocation(riderID, point, dto.RecordedAt)
}
