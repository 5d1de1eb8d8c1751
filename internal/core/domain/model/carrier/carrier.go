package carrier

import (
	"errors"
	"fmt"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

const (
	// MinCoverageRadiusKm is the smallest coverage radius a carrier may declare.
	MinCoverageRadiusKm = 1.0
	// MaxCoverageRadiusKm is the largest coverage radius a carrier may declare.
	MaxCoverageRadiusKm = 50.0
)

var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")
)

// Carrier represents a person who delivers parcels for the marketplace.
// It is an aggregate root owning the carrier's matching profile: current
// position, declared coverage radius and availability flag, plus the
// reputation counters shown to vendors.
//
// Business rules:
//   - Only available carriers see missions; availability is an explicit toggle
//   - The coverage radius is bounded to [1, 50] kilometers
//   - A mission is within reach when the pickup point lies at or inside the
//     radius measured from the carrier's current position
//   - Reputation counters only ever grow; the rating average is recomputed
//     from reviews, never edited directly
type Carrier struct {
	// id uniquely identifies the carrier.
	id kernel.UUID

	// name is the display name shown to vendors.
	name string

	// available reports whether the carrier currently wants missions.
	available bool

	// location is the carrier's last reported position.
	location kernel.GeoPoint

	// coverageRadiusKm bounds how far from location the carrier serves.
	coverageRadiusKm float64

	// deliveriesCount is the number of missions the carrier completed.
	deliveriesCount int

	// ratingAverage and ratingCount summarize vendor reviews.
	ratingAverage float64
	ratingCount   int

	// guard ensures the carrier was properly constructed.
	guard guard.ConstructorGuard
}

// NewCarrier creates a new Carrier at the given position.
// Fresh carriers start unavailable with an empty delivery and review history;
// they opt in to matching via SetAvailability.
func NewCarrier(id kernel.UUID, name string, location kernel.GeoPoint, coverageRadiusKm float64) (*Carrier, error) {
	c := &Carrier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setLocation(location),
		c.setCoverageRadius(coverageRadiusKm),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier aggregate from persistent storage.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	available bool,
	location kernel.GeoPoint,
	coverageRadiusKm float64,
	deliveriesCount int,
	ratingAverage float64,
	ratingCount int,
) (*Carrier, error) {
	c := &Carrier{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setLocation(location),
		c.setCoverageRadius(coverageRadiusKm),
		c.setDeliveriesCount(deliveriesCount),
		c.setRating(ratingAverage, ratingCount),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}

	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// IsAvailable reports whether the carrier currently accepts missions.
func (c *Carrier) IsAvailable() bool {
	return c.available
}

// Location returns the carrier's last reported position.
func (c *Carrier) Location() kernel.GeoPoint {
	return c.location
}

// CoverageRadiusKm returns the carrier's declared coverage radius.
func (c *Carrier) CoverageRadiusKm() float64 {
	return c.coverageRadiusKm
}

// DeliveriesCount returns the number of completed missions.
func (c *Carrier) DeliveriesCount() int {
	return c.deliveriesCount
}

// RatingAverage returns the mean review rating, 0 when unreviewed.
func (c *Carrier) RatingAverage() float64 {
	return c.ratingAverage
}

// RatingCount returns the number of reviews received.
func (c *Carrier) RatingCount() int {
	return c.ratingCount
}

// SetAvailability toggles whether the carrier is offered missions.
// Going unavailable does not affect missions already accepted.
func (c *Carrier) SetAvailability(available bool) {
	c.available = available
}

// MoveTo updates the carrier's reported position.
func (c *Carrier) MoveTo(location kernel.GeoPoint) error {
	return c.setLocation(location)
}

// SetCoverageRadius updates the declared coverage radius.
func (c *Carrier) SetCoverageRadius(radiusKm float64) error {
	return c.setCoverageRadius(radiusKm)
}

// CanServe reports whether the pickup point lies within the carrier's
// coverage circle. The boundary is inclusive: a pickup exactly at radius
// distance is served. Availability is not part of this check; callers filter
// on IsAvailable separately.
func (c *Carrier) CanServe(pickup kernel.GeoPoint) (bool, error) {
	distance, err := c.location.DistanceKm(pickup)
	if err != nil {
		return false, err
	}

	return distance <= c.coverageRadiusKm, nil
}

// RecordDelivery increments the completed-deliveries counter.
// Called when a mission the carrier held reaches Delivered.
func (c *Carrier) RecordDelivery() {
	c.deliveriesCount++
}

// Rerate replaces the review summary with a freshly computed average and
// count. The review store recomputes these from all reviews of the carrier;
// the aggregate only checks the summary is plausible.
func (c *Carrier) Rerate(average float64, count int) error {
	return c.setRating(average, count)
}

// setID validates and sets the carrier's unique identifier.
func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the carrier's display name.
func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Carrier) setCoverageRadius(radiusKm float64) error {
	if radiusKm < MinCoverageRadiusKm || radiusKm > MaxCoverageRadiusKm {
		return errs.NewValueIsOutOfRangeError("coverage radius", radiusKm,
			MinCoverageRadiusKm, MaxCoverageRadiusKm)
	}
	c.coverageRadiusKm = radiusKm
	return nil
}

func (c *Carrier) setDeliveriesCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveries count",
			fmt.Errorf("%d is negative", count))
	}
	c.deliveriesCount = count
	return nil
}

func (c *Carrier) setRating(average float64, count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rating count",
			fmt.Errorf("%d is negative", count))
	}
	if count == 0 && average != 0 {
		return errs.NewValueIsInvalidErrorWithCause("rating average",
			fmt.Errorf("%g average with no reviews", average))
	}
	if count > 0 && (average < 1 || average > 5) {
		return errs.NewValueIsOutOfRangeError("rating average", average, 1, 5)
	}
	c.ratingAverage = average
	c.ratingCount = count
	return nil
}
