package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/kernel"
)

// TransactionRepository defines the persistence contract for billing records.
// Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	// Add persists a new billing record.
	// At most one transaction exists per parcel; a second insert for the same
	// parcel fails with a StateConflictError.
	Add(ctx context.Context, aggregate *billing.Transaction) error

	// GetByParcel retrieves the billing record of a delivered parcel.
	// Returns an ObjectNotFoundError when the parcel has no transaction.
	GetByParcel(ctx context.Context, parcelID kernel.UUID) (*billing.Transaction, error)
}
