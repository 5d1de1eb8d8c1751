// Package reviewrepo provides the GORM-backed repository for vendor reviews.
package reviewrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database row for a vendor review.
// The unique index on parcel_id backs the one-review-per-parcel rule.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VendorID  uuid.UUID `gorm:"type:uuid;index"`
	CarrierID uuid.UUID `gorm:"type:uuid;index"`
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for review rows.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		ParcelID:  aggregate.ParcelID().Bytes(),
		VendorID:  aggregate.VendorID().Bytes(),
		CarrierID: aggregate.CarrierID().Bytes(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a review.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, parcelID, vendorID, carrierID, dto.Rating, dto.Comment, dto.CreatedAt)
}
