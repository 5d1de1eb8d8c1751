// Package billing contains the immutable money records produced when a
// mission completes: the vendor charge, the platform fee and the carrier
// payout, frozen at the amounts captured when the parcel was created.
package billing

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// ErrTransactionIsNotConstructed is returned when using an improperly initialized Transaction.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction")

// Transaction is the append-only billing record written exactly once per
// delivered parcel. It is an aggregate root with no mutators: once written,
// a transaction is never updated or deleted.
//
// Invariant: Fee + Payout == Amount, the same split the parcel carried since
// creation.
type Transaction struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	vendorID  kernel.UUID
	carrierID kernel.UUID

	// amount is the total charged to the vendor.
	amount kernel.Money
	// fee is the share retained by the platform.
	fee kernel.Money
	// payout is the share released to the carrier.
	payout kernel.Money

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewTransaction creates the billing record for a delivered parcel.
func NewTransaction(
	id kernel.UUID,
	parcelID kernel.UUID,
	vendorID kernel.UUID,
	carrierID kernel.UUID,
	amount kernel.Money,
	fee kernel.Money,
	payout kernel.Money,
	now time.Time,
) (*Transaction, error) {
	t := &Transaction{
		amount:    amount,
		fee:       fee,
		payout:    payout,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setParcelID(parcelID),
		t.setVendorID(vendorID),
		t.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	if !fee.Add(payout).IsEqual(amount) {
		return nil, errs.NewValueIsInvalidErrorWithCause("transaction",
			fmt.Errorf("fee %s + payout %s does not equal amount %s", fee, payout, amount))
	}

	return t, nil
}

// RestoreTransaction reconstructs a Transaction from persistent storage.
// The split invariant is re-verified so a corrupted row cannot flow back
// into the domain unnoticed.
func RestoreTransaction(
	id kernel.UUID,
	parcelID kernel.UUID,
	vendorID kernel.UUID,
	carrierID kernel.UUID,
	amount kernel.Money,
	fee kernel.Money,
	payout kernel.Money,
	createdAt time.Time,
) (*Transaction, error) {
	return NewTransaction(id, parcelID, vendorID, carrierID, amount, fee, payout, createdAt)
}

// Validate ensures the Transaction was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}

	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// ParcelID returns the delivered parcel this record settles.
func (t *Transaction) ParcelID() kernel.UUID {
	return t.parcelID
}

// VendorID returns the charged vendor.
func (t *Transaction) VendorID() kernel.UUID {
	return t.vendorID
}

// CarrierID returns the carrier receiving the payout.
func (t *Transaction) CarrierID() kernel.UUID {
	return t.carrierID
}

// Amount returns the total charged to the vendor.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Fee returns the platform's share.
func (t *Transaction) Fee() kernel.Money {
	return t.fee
}

// Payout returns the carrier's share.
func (t *Transaction) Payout() kernel.Money {
	return t.payout
}

// CreatedAt returns when the record was written.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.parcelID = id
	return nil
}

func (t *Transaction) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.vendorID = id
	return nil
}

func (t *Transaction) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.carrierID = id
	return nil
}
