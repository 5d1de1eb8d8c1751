// Package review contains vendor feedback on completed missions.
// A vendor may leave at most one review per delivered parcel; the carrier's
// rating summary is recomputed from all reviews whenever a new one lands.
package review

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

const (
	// MinRating is the lowest permitted rating.
	MinRating = 1
	// MaxRating is the highest permitted rating.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when using an improperly initialized Review.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a vendor's rating of the carrier who delivered one parcel.
// Reviews are immutable once written.
type Review struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	vendorID  kernel.UUID
	carrierID kernel.UUID

	// rating is the 1..5 score.
	rating int

	// comment is optional free text.
	comment string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a review of a delivered parcel's carrier.
// Uniqueness per parcel is enforced by the review store, not here.
func NewReview(
	id kernel.UUID,
	parcelID kernel.UUID,
	vendorID kernel.UUID,
	carrierID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*Review, error) {
	r := &Review{
		comment:   comment,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setParcelID(parcelID),
		r.setVendorID(vendorID),
		r.setCarrierID(carrierID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persistent storage.
func RestoreReview(
	id kernel.UUID,
	parcelID kernel.UUID,
	vendorID kernel.UUID,
	carrierID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, parcelID, vendorID, carrierID, rating, comment, createdAt)
}

// Validate ensures the Review was properly constructed.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}

	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ParcelID returns the delivered parcel the review is about.
func (r *Review) ParcelID() kernel.UUID {
	return r.parcelID
}

// VendorID returns the reviewing vendor.
func (r *Review) VendorID() kernel.UUID {
	return r.vendorID
}

// CarrierID returns the reviewed carrier.
func (r *Review) CarrierID() kernel.UUID {
	return r.carrierID
}

// Rating returns the 1..5 score.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was written.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.parcelID = id
	return nil
}

func (r *Review) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.vendorID = id
	return nil
}

func (r *Review) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.carrierID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
