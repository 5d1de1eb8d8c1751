package parcelrepo

import (
	"context"
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
//
// The write is conditioned on the status and packaging pair the aggregate
// was loaded with. When a concurrent transition changed the row in between,
// zero rows match and the caller gets a StateConflictError carrying the
// row's current state. That conditional write is what makes a double accept
// resolve to exactly one winner.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ? AND packaging = ?",
			dto.ID,
			int(aggregate.PersistedStatus()),
			int(aggregate.PersistedPackaging()),
		).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMiss(ctx, aggregate.ID())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// explainMiss distinguishes a lost concurrent race from a missing row.
func (r *GormParcelRepository) explainMiss(ctx context.Context, id kernel.UUID) error {
	var current ParcelDTO
	err := r.db.WithContext(ctx).
		Select("status", "packaging").
		First(&current, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	if err != nil {
		return err
	}

	return errs.NewStateConflictError("parcel", parcel.Status(current.Status).String())
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every parcel still waiting for a carrier.
func (r *GormParcelRepository) GetAllPending(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ?", int(parcel.Pending)).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetStalledPackaging retrieves accepted parcels whose packaging evidence
// has been awaiting vendor confirmation since before the cutoff instant.
func (r *GormParcelRepository) GetStalledPackaging(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND packaging = ? AND packaging_submitted_at < ?",
			int(parcel.Accepted), int(parcel.PackagingPending), cutoff).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormParcelRepository) toDomainAll(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
