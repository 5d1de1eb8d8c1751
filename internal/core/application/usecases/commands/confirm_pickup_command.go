package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrConfirmPickupCommandIsNotConstructed = errors.New(
		"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
	)
	ErrPickupCodeIsRequired = errors.New("pickup code is required")
)

// ConfirmPickupCommand carries the carrier's attempt to verify the pickup
// code and take physical custody of the parcel.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID
	code      string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to verify the pickup code.
// The code itself is checked against the stored secret by the aggregate,
// not here.
func NewConfirmPickupCommand(parcelID, carrierID kernel.UUID, code string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setCode(code),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// ParcelID returns the mission being picked up.
func (c ConfirmPickupCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the carrier verifying the code.
func (c ConfirmPickupCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Code returns the supplied pickup code.
func (c ConfirmPickupCommand) Code() string {
	return c.code
}

func (c *ConfirmPickupCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *ConfirmPickupCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *ConfirmPickupCommand) setCode(code string) error {
	if code == "" {
		return ErrPickupCodeIsRequired
	}
	c.code = code
	return nil
}
