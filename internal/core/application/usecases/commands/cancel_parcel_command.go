package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents the vendor or the assigned carrier
// cancelling a mission. The reason is optional.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	callerID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a mission.
func NewCancelParcelCommand(parcelID, callerID kernel.UUID, reason string) (CancelParcelCommand, error) {
	cmd := CancelParcelCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCallerID(callerID),
	); err != nil {
		return CancelParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ParcelID returns the mission being cancelled.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CallerID returns who requested the cancellation.
func (c CancelParcelCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Reason returns the optional cancellation reason.
func (c CancelParcelCommand) Reason() string {
	return c.reason
}

func (c *CancelParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CancelParcelCommand) setCallerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.callerID = id
	return nil
}
