// Package ports defines the contracts between the domain core and
// infrastructure: repositories, the unit of work and the event notifier.
// Adapters implement them; use cases depend only on the interfaces.
package ports

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	//
	// The write is conditional on the status and packaging pair the aggregate
	// was loaded with (see parcel.Parcel.PersistedStatus). When a concurrent
	// transition changed the row in between, no rows match and Update fails
	// with a StateConflictError; the caller's transaction must then roll
	// back. This is what guarantees exactly-once acceptance under a
	// double-accept race.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllPending retrieves every parcel still waiting for a carrier.
	// The matcher filters the pool by distance afterwards.
	GetAllPending(ctx context.Context) ([]*parcel.Parcel, error)

	// GetStalledPackaging retrieves accepted parcels whose packaging has been
	// awaiting vendor confirmation since before the given cutoff instant.
	// The auto-confirmation sweep feeds each result back through Update.
	GetStalledPackaging(ctx context.Context, cutoff time.Time) ([]*parcel.Parcel, error)
}
