// Package transactionrepo provides the GORM-backed repository for billing
// records. The store is append-only with one record per parcel.
package transactionrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/billing"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TransactionDTO represents the database row for a billing record.
// The unique index on parcel_id backs the one-transaction-per-parcel rule.
type TransactionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	CarrierID   uuid.UUID `gorm:"type:uuid;index"`
	AmountCents int64
	FeeCents    int64
	PayoutCents int64
	CreatedAt   time.Time
}

// TableName specifies the database table name for billing rows.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// fromDomain converts a billing record to its database representation.
func fromDomain(aggregate *billing.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          aggregate.ID().Bytes(),
		ParcelID:    aggregate.ParcelID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		CarrierID:   aggregate.CarrierID().Bytes(),
		AmountCents: aggregate.Amount().Cents(),
		FeeCents:    aggregate.Fee().Cents(),
		PayoutCents: aggregate.Payout().Cents(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a billing record, re-verifying the
// fee plus payout split on the way in.
func toDomain(dto TransactionDTO) (*billing.Transaction, error) {
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

	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoneyFromCents(dto.FeeCents)
	if err != nil {
		return nil, err
	}
	payout, err := kernel.NewMoneyFromCents(dto.PayoutCents)
	if err != nil {
		return nil, err
	}

	return billing.RestoreTransaction(id, parcelID, vendorID, carrierID, amount, fee, payout, dto.CreatedAt)
}
