package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrRejectPackagingCommandIsNotConstructed = errors.New(
		"RejectPackagingCommand must be created via NewRejectPackagingCommand constructor",
	)
	ErrRejectReasonIsRequired = errors.New("rejection reason is required")
)

// RejectPackagingCommand represents the vendor rejecting the carrier's
// packaging evidence. A reason is mandatory so the carrier knows what to
// redo.
type RejectPackagingCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	vendorID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewRejectPackagingCommand creates a command for vendor packaging rejection.
func NewRejectPackagingCommand(parcelID, vendorID kernel.UUID, reason string) (RejectPackagingCommand, error) {
	cmd := RejectPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setVendorID(vendorID),
		cmd.setReason(reason),
	); err != nil {
		return RejectPackagingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPackagingCommand) Validate() error {
	return c.guard.Validate(ErrRejectPackagingCommandIsNotConstructed)
}

// ParcelID returns the mission whose packaging is rejected.
func (c RejectPackagingCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// VendorID returns the rejecting vendor.
func (c RejectPackagingCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Reason returns why the packaging was rejected.
func (c RejectPackagingCommand) Reason() string {
	return c.reason
}

func (c *RejectPackagingCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RejectPackagingCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *RejectPackagingCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectReasonIsRequired
	}
	c.reason = reason
	return nil
}
