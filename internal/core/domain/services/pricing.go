package services

import (
	"fmt"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"
)

// platformFeePercent is the share of the base price retained by the platform.
const platformFeePercent = 20

// getBasePriceCents returns the base price table keyed by size class,
// in cents.
func getBasePriceCents() map[parcel.Size]int64 {
	return map[parcel.Size]int64{
		parcel.SizeSmall:  250,
		parcel.SizeMedium: 400,
		parcel.SizeLarge:  600,
		parcel.SizeXLarge: 900,
	}
}

// PricingEngine is a domain service that prices a parcel by its size class.
//
// The price is flat per size tier; distance does not affect it. The platform
// fee is 20 percent of the base price, rounded half-up to whole cents, and
// the carrier payout is the remainder, so fee plus payout always equals the
// base exactly.
//
// The split is computed once at parcel creation and captured onto the
// aggregate; repricing never happens later in the lifecycle.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the base/fee/payout split for the given size class.
// Returns an error for an unknown size.
func (e PricingEngine) Price(size parcel.Size) (parcel.PricingResult, error) {
	baseCents, ok := getBasePriceCents()[size]
	if !ok {
		return parcel.PricingResult{}, errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not a priced size", size))
	}

	base, err := kernel.NewMoneyFromCents(baseCents)
	if err != nil {
		return parcel.PricingResult{}, err
	}

	fee := base.MulPercentHalfUp(platformFeePercent)
	payout := base.Sub(fee)

	return parcel.NewPricingResult(base, fee, payout)
}
