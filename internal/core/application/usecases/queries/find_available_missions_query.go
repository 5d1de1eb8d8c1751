// Package queries contains the read side of the application. The mission
// board is answered straight from the database with raw SQL; the mission
// feed goes through the repositories so the MissionMatcher domain service
// owns its filtering and ordering rules. Neither path uses a unit of work.
package queries

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrFindAvailableMissionsQueryIsNotConstructed = errors.New(
	"FindAvailableMissionsQuery must be created via NewFindAvailableMissionsQuery constructor",
)

// FindAvailableMissionsQuery asks for the feed of pending parcels a carrier
// could take: pickup within reach, sorted nearest first.
//
// RadiusKm optionally narrows (or widens) the search for this request only;
// nil falls back to the carrier's profile coverage radius. Either way the
// effective radius obeys the same bounds as the profile setting.
type FindAvailableMissionsQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	radiusKm  *float64

	guard guard.ConstructorGuard
}

// NewFindAvailableMissionsQuery creates a query for a carrier's mission feed.
func NewFindAvailableMissionsQuery(carrierID kernel.UUID, radiusKm *float64) (FindAvailableMissionsQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return FindAvailableMissionsQuery{}, err
	}

	if radiusKm != nil &&
		(*radiusKm < carrier.MinCoverageRadiusKm || *radiusKm > carrier.MaxCoverageRadiusKm) {
		return FindAvailableMissionsQuery{}, errs.NewValueIsOutOfRangeError(
			"radius", *radiusKm, carrier.MinCoverageRadiusKm, carrier.MaxCoverageRadiusKm)
	}

	return FindAvailableMissionsQuery{
		carrierID: carrierID,
		radiusKm:  radiusKm,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAvailableMissionsQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableMissionsQueryIsNotConstructed)
}

// CarrierID returns the carrier asking for the feed.
func (q FindAvailableMissionsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// RadiusKm returns the per-request radius override, nil when absent.
func (q FindAvailableMissionsQuery) RadiusKm() *float64 {
	return q.radiusKm
}

// FindAvailableMissionsQueryResponse is one feed entry: a pending parcel
// with the carrier-facing facts needed to decide on it. The pickup code is
// deliberately absent.
type FindAvailableMissionsQueryResponse struct {
	ID             kernel.UUID
	PickupAddress  string
	PickupPoint    kernel.GeoPoint
	DropoffName    string
	DropoffAddress string
	Size           string
	PayoutCents    int64
	WindowStart    time.Time
	WindowEnd      time.Time
	DistanceKm     float64
}
