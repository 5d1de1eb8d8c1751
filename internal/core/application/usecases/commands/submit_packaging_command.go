package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrSubmitPackagingCommandIsNotConstructed = errors.New(
		"SubmitPackagingCommand must be created via NewSubmitPackagingCommand constructor",
	)
	ErrPhotoURLIsRequired = errors.New("packaging photo URL is required")
)

// SubmitPackagingCommand carries the carrier's packaging photo evidence.
// Submission starts the vendor confirmation deadline clock.
type SubmitPackagingCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	carrierID kernel.UUID
	photoURL  string

	guard guard.ConstructorGuard
}

// NewSubmitPackagingCommand creates a command to submit packaging evidence.
func NewSubmitPackagingCommand(parcelID, carrierID kernel.UUID, photoURL string) (SubmitPackagingCommand, error) {
	cmd := SubmitPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
		cmd.setPhotoURL(photoURL),
	); err != nil {
		return SubmitPackagingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPackagingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPackagingCommandIsNotConstructed)
}

// ParcelID returns the mission being packaged.
func (c SubmitPackagingCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the submitting carrier.
func (c SubmitPackagingCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// PhotoURL returns the packaging evidence photo.
func (c SubmitPackagingCommand) PhotoURL() string {
	return c.photoURL
}

func (c *SubmitPackagingCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *SubmitPackagingCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}

func (c *SubmitPackagingCommand) setPhotoURL(photoURL string) error {
	if photoURL == "" {
		return ErrPhotoURLIsRequired
	}
	c.photoURL = photoURL
	return nil
}
