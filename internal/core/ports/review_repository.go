package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for vendor reviews.
// Reviews are append-only.
type ReviewRepository interface {
	// Add persists a new review.
	// At most one review exists per parcel; a second insert for the same
	// parcel fails with a StateConflictError.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByParcel retrieves the review left for a parcel.
	// Returns an ObjectNotFoundError when the parcel has no review.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) (*review.Review, error)

	// GetAllByCarrier retrieves every review of a carrier.
	// Used to recompute the carrier's rating summary after a new review.
	GetAllByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*review.Review, error)
}
