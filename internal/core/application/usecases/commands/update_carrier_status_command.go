package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrUpdateCarrierStatusCommandIsNotConstructed = errors.New(
		"UpdateCarrierStatusCommand must be created via NewUpdateCarrierStatusCommand constructor",
	)
	ErrNoCarrierChangesRequested = errors.New("at least one profile change is required")
)

// UpdateCarrierStatusCommand updates a carrier's matching profile:
// availability toggle, reported position and coverage radius. Each part is
// optional (nil means unchanged), but at least one must be present.
type UpdateCarrierStatusCommand struct { //nolint:recvcheck //using for validation
	carrierID        kernel.UUID
	available        *bool
	location         *kernel.GeoPoint
	coverageRadiusKm *float64

	guard guard.ConstructorGuard
}

// NewUpdateCarrierStatusCommand creates a command to update a carrier profile.
func NewUpdateCarrierStatusCommand(
	carrierID kernel.UUID,
	available *bool,
	location *kernel.GeoPoint,
	coverageRadiusKm *float64,
) (UpdateCarrierStatusCommand, error) {
	cmd := UpdateCarrierStatusCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setLocation(location),
		cmd.setCoverageRadius(coverageRadiusKm),
	); err != nil {
		return UpdateCarrierStatusCommand{}, err
	}

	if available == nil && location == nil && coverageRadiusKm == nil {
		return UpdateCarrierStatusCommand{}, ErrNoCarrierChangesRequested
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierStatusCommandIsNotConstructed)
}

// CarrierID returns the carrier being updated.
func (c UpdateCarrierStatusCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Available returns the requested availability, nil when unchanged.
func (c UpdateCarrierStatusCommand) Available() *bool {
	return c.available
}

// Location returns the requested position, nil when unchanged.
func (c UpdateCarrierStatusCommand) Location() *kernel.GeoPoint {
	return c.location
}

// CoverageRadiusKm returns the requested radius, nil when unchanged.
func (c UpdateCarrierStatusCommand) CoverageRadiusKm() *float64 {
	return c.coverageRadiusKm
}

func (c *UpdateCarrierStatusCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *UpdateCarrierStatusCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *UpdateCarrierStatusCommand) setCoverageRadius(radiusKm *float64) error {
	if radiusKm == nil {
		return nil
	}
	if *radiusKm < carrier.MinCoverageRadiusKm || *radiusKm > carrier.MaxCoverageRadiusKm {
		return errs.NewValueIsOutOfRangeError("coverage radius", *radiusKm,
			carrier.MinCoverageRadiusKm, carrier.MaxCoverageRadiusKm)
	}
	c.coverageRadiusKm = radiusKm
	return nil
}
