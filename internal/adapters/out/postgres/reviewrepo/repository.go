package reviewrepo

import (
	"context"
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/review"
	"parcelmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review.
// The per-parcel existence check runs inside the caller's transaction; the
// unique index on parcel_id is the backstop.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("parcel_id = ?", aggregate.ParcelID().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewStateConflictError("review", "already submitted for parcel")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByParcel retrieves the review left for a parcel.
func (r *GormReviewRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) (*review.Review, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCarrier retrieves every review of a carrier, oldest first.
func (r *GormReviewRepository) GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*review.Review, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ReviewDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "carrier_id = ?", carrierID.Bytes()).Error; err != nil {
		return nil, err
	}

	reviews := make([]*review.Review, 0, len(dtos))
	for _, dto := range dtos {
		rv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}
