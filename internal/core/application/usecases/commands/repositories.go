// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence through the conditional update.
package commands

import (
	"context"

	"parcelmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition covering the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// TransactionRepoFactory provides access to the billing repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// CarrierUoW manages transactions for carrier-only operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// ParcelCarrierUoW manages transactions spanning parcel and carrier
	// aggregates, such as mission acceptance.
	ParcelCarrierUoW interface {
		TxManager
		ParcelRepoFactory
		CarrierRepoFactory
	}

	// ParcelCarrierUoWFactory creates new parcel+carrier unit of work instances.
	ParcelCarrierUoWFactory interface {
		Create() ParcelCarrierUoW
	}

	// DeliveryUoW manages the delivery transaction: the parcel transition,
	// the billing record and the carrier's delivery counter move atomically.
	DeliveryUoW interface {
		TxManager
		ParcelRepoFactory
		CarrierRepoFactory
		TransactionRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReviewUoW manages the review transaction: the review insert and the
	// carrier's rating recompute move atomically.
	ReviewUoW interface {
		TxManager
		ParcelRepoFactory
		CarrierRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
