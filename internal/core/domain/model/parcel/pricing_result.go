package parcel

import (
	"fmt"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// ErrPricingResultIsNotConstructed is returned when attempting to use an improperly initialized PricingResult.
var ErrPricingResultIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing result must be created via NewPricingResult constructor")

// PricingResult is the money split produced by the pricing engine for one
// parcel: the base price the vendor pays, the platform fee, and the carrier
// payout. It is an ephemeral value object: never persisted on its own, only
// captured onto the parcel at creation and onto the transaction at delivery.
//
// Invariant: Fee + Payout == Base exactly, in cents, for every size tier.
type PricingResult struct {
	base   kernel.Money
	fee    kernel.Money
	payout kernel.Money
	guard  guard.ConstructorGuard
}

// NewPricingResult creates a PricingResult and enforces the split invariant.
// Returns an error if fee + payout does not sum exactly to base.
func NewPricingResult(base, fee, payout kernel.Money) (PricingResult, error) {
	if !fee.Add(payout).IsEqual(base) {
		return PricingResult{}, errs.NewValueIsInvalidErrorWithCause("pricing result",
			fmt.Errorf("fee %s + payout %s does not equal base %s", fee, payout, base))
	}

	return PricingResult{
		base:   base,
		fee:    fee,
		payout: payout,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the PricingResult was properly constructed using the constructor.
func (r PricingResult) Validate() error {
	return r.guard.Validate(ErrPricingResultIsNotConstructed)
}

// Base returns the base price the vendor is charged.
func (r PricingResult) Base() kernel.Money {
	return r.base
}

// Fee returns the platform fee retained from the base price.
func (r PricingResult) Fee() kernel.Money {
	return r.fee
}

// Payout returns the amount released to the carrier at delivery.
func (r PricingResult) Payout() kernel.Money {
	return r.payout
}

// Total returns the total price charged to the vendor.
// The marketplace charges no surcharges on top of the base price.
func (r PricingResult) Total() kernel.Money {
	return r.base
}
