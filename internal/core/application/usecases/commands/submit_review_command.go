package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/review"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a vendor rating the carrier who delivered
// their parcel.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	vendorID kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to review a delivered parcel's carrier.
func NewSubmitReviewCommand(parcelID, vendorID kernel.UUID, rating int, comment string) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setVendorID(vendorID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ParcelID returns the delivered parcel being reviewed.
func (c SubmitReviewCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// VendorID returns the reviewing vendor.
func (c SubmitReviewCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Rating returns the 1..5 score.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *SubmitReviewCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}
	c.rating = rating
	return nil
}
