// Package parcelrepo provides the GORM-backed repository for parcel
// aggregates, including the conditional update that arbitrates concurrent
// lifecycle transitions.
package parcelrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database row for a parcel aggregate.
// Status and packaging are stored as their integer values; the pair is also
// the compare half of the repository's conditional update.
type ParcelDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID  uuid.UUID  `gorm:"type:uuid;index"`
	CarrierID *uuid.UUID `gorm:"type:uuid;index"`

	PickupAddress string
	PickupLat     float64
	PickupLon     float64

	DropoffKind    string
	DropoffName    string
	DropoffAddress string

	Size        string
	PriceCents  int64
	FeeCents    int64
	PayoutCents int64

	WindowStart time.Time
	WindowEnd   time.Time

	PickupCode string

	Status    int `gorm:"index"`
	Packaging int

	PackagingPhotoURL     string
	PackagingRejectReason string
	DeliveryProofURL      string
	DeliveryNotes         string

	CancelledBy  *uuid.UUID `gorm:"type:uuid"`
	CancelReason string

	DepartureLat *float64
	DepartureLon *float64

	CreatedAt            time.Time
	AcceptedAt           *time.Time
	DepartedAt           *time.Time
	ArrivedAt            *time.Time
	PackagingSubmittedAt *time.Time `gorm:"index"`
	PackagingConfirmedAt *time.Time
	PickedUpAt           *time.Time
	DeliveredAt          *time.Time
	CancelledAt          *time.Time
}

// TableName specifies the database table name for parcel rows.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	var cancelledBy *uuid.UUID
	if id := aggregate.CancelledBy(); id != nil {
		raw := id.Bytes()
		cancelledBy = &raw
	}

	var departureLat, departureLon *float64
	if point := aggregate.DeparturePoint(); point != nil {
		lat, lon := point.Lat(), point.Lon()
		departureLat, departureLon = &lat, &lon
	}

	return ParcelDTO{
		ID:        aggregate.ID().Bytes(),
		VendorID:  aggregate.VendorID().Bytes(),
		CarrierID: carrierID,

		PickupAddress: aggregate.PickupAddress(),
		PickupLat:     aggregate.PickupPoint().Lat(),
		PickupLon:     aggregate.PickupPoint().Lon(),

		DropoffKind:    aggregate.Dropoff().Kind(),
		DropoffName:    aggregate.Dropoff().Name(),
		DropoffAddress: aggregate.Dropoff().Address(),

		Size:        aggregate.Size().String(),
		PriceCents:  aggregate.Pricing().Base().Cents(),
		FeeCents:    aggregate.Pricing().Fee().Cents(),
		PayoutCents: aggregate.Pricing().Payout().Cents(),

		WindowStart: aggregate.Window().Start(),
		WindowEnd:   aggregate.Window().End(),

		PickupCode: aggregate.PickupCode().String(),

		Status:    int(aggregate.Status()),
		Packaging: int(aggregate.Packaging()),

		PackagingPhotoURL:     aggregate.PackagingPhotoURL(),
		PackagingRejectReason: aggregate.PackagingRejectReason(),
		DeliveryProofURL:      aggregate.DeliveryProofURL(),
		DeliveryNotes:         aggregate.DeliveryNotes(),

		CancelledBy:  cancelledBy,
		CancelReason: aggregate.CancelReason(),

		DepartureLat: departureLat,
		DepartureLon: departureLon,

		CreatedAt:            aggregate.CreatedAt(),
		AcceptedAt:           aggregate.AcceptedAt(),
		DepartedAt:           aggregate.DepartedAt(),
		ArrivedAt:            aggregate.ArrivedAt(),
		PackagingSubmittedAt: aggregate.PackagingSubmittedAt(),
		PackagingConfirmedAt: aggregate.PackagingConfirmedAt(),
		PickedUpAt:           aggregate.PickedUpAt(),
		DeliveredAt:          aggregate.DeliveredAt(),
		CancelledAt:          aggregate.CancelledAt(),
	}
}

// toDomain converts a database row to a parcel aggregate via RestoreParcel,
// re-validating every value object on the way in.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		carrierID = &cID
	}

	var cancelledBy *kernel.UUID
	if dto.CancelledBy != nil {
		byID, byErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		cancelledBy = &byID
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLon)
	if err != nil {
		return nil, err
	}

	var departurePoint *kernel.GeoPoint
	if dto.DepartureLat != nil && dto.DepartureLon != nil {
		point, pErr := kernel.NewGeoPoint(*dto.DepartureLat, *dto.DepartureLon)
		if pErr != nil {
			return nil, pErr
		}
		departurePoint = &point
	}

	dropoff, err := parcel.NewDropoff(dto.DropoffKind, dto.DropoffName, dto.DropoffAddress)
	if err != nil {
		return nil, err
	}

	size, err := parcel.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}

	pricing, err := pricingFromCents(dto.PriceCents, dto.FeeCents, dto.PayoutCents)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	pickupCode, err := parcel.PickupCodeFromString(dto.PickupCode)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.Snapshot{
		ID:                    id,
		VendorID:              vendorID,
		CarrierID:             carrierID,
		PickupAddress:         dto.PickupAddress,
		PickupPoint:           pickupPoint,
		Dropoff:               dropoff,
		Size:                  size,
		Pricing:               pricing,
		Window:                window,
		PickupCode:            pickupCode,
		Status:                parcel.Status(dto.Status),
		Packaging:             parcel.Packaging(dto.Packaging),
		PackagingPhotoURL:     dto.PackagingPhotoURL,
		PackagingRejectReason: dto.PackagingRejectReason,
		DeliveryProofURL:      dto.DeliveryProofURL,
		DeliveryNotes:         dto.DeliveryNotes,
		CancelledBy:           cancelledBy,
		CancelReason:          dto.CancelReason,
		DeparturePoint:        departurePoint,
		CreatedAt:             dto.CreatedAt,
		AcceptedAt:            dto.AcceptedAt,
		DepartedAt:            dto.DepartedAt,
		ArrivedAt:             dto.ArrivedAt,
		PackagingSubmittedAt:  dto.PackagingSubmittedAt,
		PackagingConfirmedAt:  dto.PackagingConfirmedAt,
		PickedUpAt:            dto.PickedUpAt,
		DeliveredAt:           dto.DeliveredAt,
		CancelledAt:           dto.CancelledAt,
	})
}

func pricingFromCents(price, fee, payout int64) (parcel.PricingResult, error) {
	base, err := kernel.NewMoneyFromCents(price)
	if err != nil {
		return parcel.PricingResult{}, err
	}
	feeMoney, err := kernel.NewMoneyFromCents(fee)
	if err != nil {
		return parcel.PricingResult{}, err
	}
	payoutMoney, err := kernel.NewMoneyFromCents(payout)
	if err != nil {
		return parcel.PricingResult{}, err
	}

	return parcel.NewPricingResult(base, feeMoney, payoutMoney)
}
