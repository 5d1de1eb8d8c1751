package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrStartJourneyCommandIsNotConstructed = errors.New(
	"StartJourneyCommand must be created via NewStartJourneyCommand constructor",
)

// StartJourneyCommand records that the assigned carrier departed toward the
// pickup point from the given position.
type StartJourneyCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID
	from      kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewStartJourneyCommand creates a command to record journey departure.
func NewStartJourneyCommand(parcelID, carrierID kernel.UUID, from kernel.GeoPoint) (StartJourneyCommand, error) {
	cmd := StartJourneyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setFrom(from),
	); err != nil {
		return StartJourneyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartJourneyCommand) Validate() error {
	return c.guard.Validate(ErrStartJourneyCommandIsNotConstructed)
}

// ParcelID returns the mission the carrier is departing for.
func (c StartJourneyCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the departing carrier.
func (c StartJourneyCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// From returns the carrier's departure position.
func (c StartJourneyCommand) From() kernel.GeoPoint {
	return c.from
}

func (c *StartJourneyCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *StartJourneyCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *StartJourneyCommand) setFrom(from kernel.GeoPoint) error {
	if err := from.Validate(); err != nil {
		return err
	}
	c.from = from
	return nil
}
