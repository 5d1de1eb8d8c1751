package transactionrepo

import (
	"context"
	"errors"

	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new billing record.
// The per-parcel existence check runs inside the caller's transaction; the
// unique index on parcel_id is the backstop for anything that slips past it.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *billing.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("parcel_id = ?", aggregate.ParcelID().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewStateConflictError("transaction", "already recorded for parcel")
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByParcel retrieves the billing record of a delivered parcel.
func (r *GormTransactionRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) (*billing.Transaction, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto TransactionDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transaction", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
