package queries

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierMissionsQueryHandler retrieves a carrier's active mission board
// straight from the parcels table.
type GetCarrierMissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierMissionsQueryHandler creates a handler for mission board queries.
func NewGetCarrierMissionsQueryHandler(db *gorm.DB) GetCarrierMissionsQueryHandler {
	return GetCarrierMissionsQueryHandler{db: db}
}

// Handle executes the board query.
// Returns the carrier's Accepted and PickedUp parcels, oldest acceptance
// first. A carrier with no active missions gets an empty slice.
func (h GetCarrierMissionsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierMissionsQuery,
) ([]GetCarrierMissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	missions := make([]GetCarrierMissionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, pickup_address, pickup_lat, pickup_lon,
		       dropoff_name, dropoff_address, size, payout_cents,
		       window_start, window_end, status, packaging,
		       accepted_at, departed_at, arrived_at, picked_up_at
		FROM parcels
		WHERE carrier_id = ? AND status IN (?, ?)
		ORDER BY accepted_at
	`, query.CarrierID().Bytes(), int(parcel.Accepted), int(parcel.PickedUp)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetCarrierMissionsQueryResponse
		var id uuid.UUID
		var pickupLat, pickupLon float64
		var status, packaging int

		err = rows.Scan(
			&id,
			&entry.PickupAddress,
			&pickupLat,
			&pickupLon,
			&entry.DropoffName,
			&entry.DropoffAddress,
			&entry.Size,
			&entry.PayoutCents,
			&entry.WindowStart,
			&entry.WindowEnd,
			&status,
			&packaging,
			&entry.AcceptedAt,
			&entry.DepartedAt,
			&entry.ArrivedAt,
			&entry.PickedUpAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = parcelID

		point, pointErr := kernel.NewGeoPoint(pickupLat, pickupLon)
		if pointErr != nil {
			return nil, pointErr
		}
		entry.PickupPoint = point

		entry.Status = parcel.Status(status).String()
		entry.Packaging = parcel.Packaging(packaging).String()

		missions = append(missions, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return missions, nil
}
