package queries

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrGetCarrierMissionsQueryIsNotConstructed = errors.New(
	"GetCarrierMissionsQuery must be created via NewGetCarrierMissionsQuery constructor",
)

// GetCarrierMissionsQuery asks for a carrier's active mission board: every
// parcel they hold in Accepted or PickedUp status, with enough state to
// drive the next action.
type GetCarrierMissionsQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierMissionsQuery creates a query for a carrier's active missions.
func NewGetCarrierMissionsQuery(carrierID kernel.UUID) (GetCarrierMissionsQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierMissionsQuery{}, err
	}

	return GetCarrierMissionsQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierMissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierMissionsQueryIsNotConstructed)
}

// CarrierID returns the carrier whose board is requested.
func (q GetCarrierMissionsQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// GetCarrierMissionsQueryResponse is one active mission on the board.
// Status and Packaging carry the stored state names; the journey timestamps
// are nil until the corresponding step happens.
type GetCarrierMissionsQueryResponse struct {
	ID             kernel.UUID
	PickupAddress  string
	PickupPoint    kernel.GeoPoint
	DropoffName    string
	DropoffAddress string
	Size           string
	PayoutCents    int64
	WindowStart    time.Time
	WindowEnd      time.Time
	Status         string
	Packaging      string
	AcceptedAt     *time.Time
	DepartedAt     *time.Time
	ArrivedAt      *time.Time
	PickedUpAt     *time.Time
}
