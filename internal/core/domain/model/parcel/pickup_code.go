package parcel

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// pickupCodeLength is the number of digits in a pickup code.
const pickupCodeLength = 6

// ErrPickupCodeIsNotConstructed is returned when attempting to use an improperly initialized PickupCode.
var ErrPickupCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"pickup code must be created via NewPickupCode or PickupCodeFromString")

// PickupCode is the 6-digit secret generated at parcel creation and verified
// by the carrier at physical pickup. The vendor shares it with the carrier
// out of band once packaging is confirmed.
//
// PickupCode is an immutable value object. Comparison is constant-structure
// to avoid leaking match position through timing, although the code is not
// treated as high-value secret material.
type PickupCode struct {
	code  string
	guard guard.ConstructorGuard
}

// NewPickupCode generates a fresh random 6-digit pickup code.
// Leading zeros are allowed: the code space is 000000-999999.
func NewPickupCode() (PickupCode, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return PickupCode{}, fmt.Errorf("generate pickup code: %w", err)
	}

	return PickupCode{
		code:  fmt.Sprintf("%06d", n.Int64()),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// PickupCodeFromString reconstructs a pickup code from persistence.
// The value must be exactly six ASCII digits.
func PickupCodeFromString(s string) (PickupCode, error) {
	if len(s) != pickupCodeLength {
		return PickupCode{}, errs.NewValueIsInvalidErrorWithCause("pickup code",
			fmt.Errorf("code must be %d digits", pickupCodeLength))
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return PickupCode{}, errs.NewValueIsInvalidErrorWithCause("pickup code",
				fmt.Errorf("code must contain only digits"))
		}
	}

	return PickupCode{
		code:  s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the PickupCode was properly constructed using a constructor.
func (c PickupCode) Validate() error {
	return c.guard.Validate(ErrPickupCodeIsNotConstructed)
}

// Matches reports whether the supplied code equals the stored one.
// The comparison runs in constant time for equal-length inputs.
func (c PickupCode) Matches(supplied string) bool {
	if len(supplied) != len(c.code) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.code), []byte(supplied)) == 1
}

// String returns the 6-digit code for display to the vendor.
func (c PickupCode) String() string {
	return c.code
}
