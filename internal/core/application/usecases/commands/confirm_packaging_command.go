package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrConfirmPackagingCommandIsNotConstructed = errors.New(
	"ConfirmPackagingCommand must be created via NewConfirmPackagingCommand constructor",
)

// ConfirmPackagingCommand represents the vendor approving the carrier's
// packaging evidence. System auto-confirmation goes through the sweep
// command instead.
type ConfirmPackagingCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPackagingCommand creates a command for vendor packaging approval.
func NewConfirmPackagingCommand(parcelID, vendorID kernel.UUID) (ConfirmPackagingCommand, error) {
	cmd := ConfirmPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return ConfirmPackagingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPackagingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPackagingCommandIsNotConstructed)
}

// ParcelID returns the mission whose packaging is approved.
func (c ConfirmPackagingCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// VendorID returns the approving vendor.
func (c ConfirmPackagingCommand) VendorID() kernel.UUID {
	return c.vendorID
}

func (c *ConfirmPackagingCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *ConfirmPackagingCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}
