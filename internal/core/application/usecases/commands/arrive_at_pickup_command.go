package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrArriveAtPickupCommandIsNotConstructed = errors.New(
	"ArriveAtPickupCommand must be created via NewArriveAtPickupCommand constructor",
)

// ArriveAtPickupCommand records that the assigned carrier reached the pickup
// address.
type ArriveAtPickupCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArriveAtPickupCommand creates a command to record pickup arrival.
func NewArriveAtPickupCommand(parcelID, carrierID kernel.UUID) (ArriveAtPickupCommand, error) {
	cmd := ArriveAtPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return ArriveAtPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArriveAtPickupCommand) Validate() error {
	return c.guard.Validate(ErrArriveAtPickupCommandIsNotConstructed)
}

// ParcelID returns the mission whose pickup was reached.
func (c ArriveAtPickupCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the arriving carrier.
func (c ArriveAtPickupCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *ArriveAtPickupCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *ArriveAtPickupCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
