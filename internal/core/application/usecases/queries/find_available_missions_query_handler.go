package queries

import (
	"context"

	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/core/ports"
)

// FindAvailableMissionsQueryHandler builds the mission feed for a carrier.
//
// Unlike the board query this one is not raw SQL: the feed rules (inclusive
// radius boundary, distance ordering, availability gate) belong to the
// MissionMatcher domain service, so the handler loads the pending pool
// through the repository and lets the matcher decide.
type FindAvailableMissionsQueryHandler struct {
	carrierRepo ports.CarrierRepository
	parcelRepo  ports.ParcelRepository
	matcher     services.MissionMatcher
}

// NewFindAvailableMissionsQueryHandler creates a handler for the mission feed.
func NewFindAvailableMissionsQueryHandler(
	carrierRepo ports.CarrierRepository,
	parcelRepo ports.ParcelRepository,
) FindAvailableMissionsQueryHandler {
	return FindAvailableMissionsQueryHandler{
		carrierRepo: carrierRepo,
		parcelRepo:  parcelRepo,
		matcher:     services.NewMissionMatcher(),
	}
}

// Handle returns the pending missions within reach of the carrier, nearest
// first. A request radius overrides the profile's coverage radius.
func (h FindAvailableMissionsQueryHandler) Handle(
	ctx context.Context, q FindAvailableMissionsQuery,
) ([]FindAvailableMissionsQueryResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	c, err := h.carrierRepo.Get(ctx, q.CarrierID())
	if err != nil {
		return nil, err
	}

	radiusKm := c.CoverageRadiusKm()
	if q.RadiusKm() != nil {
		radiusKm = *q.RadiusKm()
	}

	candidates, err := h.parcelRepo.GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := h.matcher.Match(c, radiusKm, candidates)
	if err != nil {
		return nil, err
	}

	feed := make([]FindAvailableMissionsQueryResponse, 0, len(matched))
	for _, m := range matched {
		feed = append(feed, FindAvailableMissionsQueryResponse{
			ID:             m.Parcel.ID(),
			PickupAddress:  m.Parcel.PickupAddress(),
			PickupPoint:    m.Parcel.PickupPoint(),
			DropoffName:    m.Parcel.Dropoff().Name(),
			DropoffAddress: m.Parcel.Dropoff().Address(),
			Size:           m.Parcel.Size().String(),
			PayoutCents:    m.Parcel.Pricing().Payout().Cents(),
			WindowStart:    m.Parcel.Window().Start(),
			WindowEnd:      m.Parcel.Window().End(),
			DistanceKm:     m.DistanceKm,
		})
	}

	return feed, nil
}
