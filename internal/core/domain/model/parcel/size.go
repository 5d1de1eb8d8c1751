package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Size represents the size class of a parcel.
// It is a closed enumeration; the base price table in the pricing engine is
// keyed by this value.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// SizeSmall fits in an envelope or small bag.
	SizeSmall

	// SizeMedium fits in a shoebox.
	SizeMedium

	// SizeLarge fits in a moving box.
	SizeLarge

	// SizeXLarge requires a trunk or cargo space.
	SizeXLarge
)

// getSizeStrings returns a map of Size values to their string representations.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "Unknown",
		SizeSmall:   "Small",
		SizeMedium:  "Medium",
		SizeLarge:   "Large",
		SizeXLarge:  "XLarge",
	}
}

// Validate checks if the Size value is valid.
// SizeUnknown (0) and any other values are invalid.
func (s Size) Validate() error {
	if s != SizeSmall && s != SizeMedium && s != SizeLarge && s != SizeXLarge {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the human-readable name of the size class.
// This method implements the fmt.Stringer interface.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SizeFromString parses a size class from its string representation.
// Used when reconstructing parcels from external input.
func SizeFromString(s string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == s && size != SizeUnknown {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size",
		fmt.Errorf("%q is not a valid size", s))
}
