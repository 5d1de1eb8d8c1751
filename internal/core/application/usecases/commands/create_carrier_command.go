package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/carrier"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier name is required")
)

// CreateCarrierCommand represents registering a new carrier profile.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID        kernel.UUID
	name             string
	location         kernel.GeoPoint
	coverageRadiusKm float64

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	location kernel.GeoPoint,
	coverageRadiusKm float64,
) (CreateCarrierCommand, error) {
	cmd := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setCoverageRadius(coverageRadiusKm),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier assigned to the new carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the carrier's display name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// Location returns the carrier's starting position.
func (c CreateCarrierCommand) Location() kernel.GeoPoint {
	return c.location
}

// CoverageRadiusKm returns the declared coverage radius.
func (c CreateCarrierCommand) CoverageRadiusKm() float64 {
	return c.coverageRadiusKm
}

func (c *CreateCarrierCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return ErrCarrierNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateCarrierCommand) setCoverageRadius(radiusKm float64) error {
	if radiusKm < carrier.MinCoverageRadiusKm || radiusKm > carrier.MaxCoverageRadiusKm {
		return errs.NewValueIsOutOfRangeError("coverage radius", radiusKm,
			carrier.MinCoverageRadiusKm, carrier.MaxCoverageRadiusKm)
	}
	c.coverageRadiusKm = radiusKm
	return nil
}
