// Package carrierrepo provides the GORM-backed repository for carrier
// aggregates: the matching profile plus the delivery and rating counters.
package carrierrepo

import (
	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database row for a carrier aggregate.
type CarrierDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	Available        bool `gorm:"index"`
	LocationLat      float64
	LocationLon      float64
	CoverageRadiusKm float64
	DeliveriesCount  int
	RatingAverage    float64
	RatingCount      int
}

// TableName specifies the database table name for carrier rows.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Available:        aggregate.IsAvailable(),
		LocationLat:      aggregate.Location().Lat(),
		LocationLon:      aggregate.Location().Lon(),
		CoverageRadiusKm: aggregate.CoverageRadiusKm(),
		DeliveriesCount:  aggregate.DeliveriesCount(),
		RatingAverage:    aggregate.RatingAverage(),
		RatingCount:      aggregate.RatingCount(),
	}
}

// toDomain converts a database row to a carrier aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.LocationLat, dto.LocationLon)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id,
		dto.Name,
		dto.Available,
		location,
		dto.CoverageRadiusKm,
		dto.DeliveriesCount,
		dto.RatingAverage,
		dto.RatingCount,
	)
}
