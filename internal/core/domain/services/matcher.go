package services

import (
	"sort"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/parcel"
)

// MatchedMission is one entry in a carrier's mission feed: a pending parcel
// within reach, annotated with the distance from the carrier's position to
// the pickup point.
type MatchedMission struct {
	Parcel     *parcel.Parcel
	DistanceKm float64
}

// MissionMatcher is a domain service that builds the mission feed for one
// carrier from the pool of pending parcels.
//
// Business rules:
//   - Unavailable carriers get an empty feed
//   - Only Pending parcels are matchable
//   - A parcel is within reach when the haversine distance from the carrier's
//     position to the pickup point is at or inside radiusKm (inclusive
//     boundary); callers pass the profile's coverage radius or a per-request
//     override
//   - The feed is ordered by distance ascending, ties broken by the earlier
//     pickup window start
type MissionMatcher struct{}

// NewMissionMatcher creates a new MissionMatcher instance.
func NewMissionMatcher() MissionMatcher {
	return MissionMatcher{}
}

// Match filters and orders the candidate parcels for the given carrier.
func (m MissionMatcher) Match(c *carrier.Carrier, radiusKm float64, candidates []*parcel.Parcel) ([]MatchedMission, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if !c.IsAvailable() {
		return []MatchedMission{}, nil
	}

	matched := make([]MatchedMission, 0, len(candidates))
	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.Status() != parcel.Pending {
			continue
		}

		distance, err := c.Location().DistanceKm(p.PickupPoint())
		if err != nil {
			return nil, err
		}
		if distance > radiusKm {
			continue
		}

		matched = append(matched, MatchedMission{Parcel: p, DistanceKm: distance})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DistanceKm != matched[j].DistanceKm {
			return matched[i].DistanceKm < matched[j].DistanceKm
		}
		return matched[i].Parcel.Window().Start().Before(matched[j].Parcel.Window().Start())
	})

	return matched, nil
}
