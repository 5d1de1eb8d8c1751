package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrAcceptParcelCommandIsNotConstructed = errors.New(
	"AcceptParcelCommand must be created via NewAcceptParcelCommand constructor",
)

// AcceptParcelCommand represents a carrier taking a pending mission.
type AcceptParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptParcelCommand creates a command for a carrier to accept a mission.
func NewAcceptParcelCommand(parcelID, carrierID kernel.UUID) (AcceptParcelCommand, error) {
	cmd := AcceptParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return AcceptParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptParcelCommand) Validate() error {
	return c.guard.Validate(ErrAcceptParcelCommandIsNotConstructed)
}

// ParcelID returns the mission being accepted.
func (c AcceptParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the accepting carrier.
func (c AcceptParcelCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *AcceptParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *AcceptParcelCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
