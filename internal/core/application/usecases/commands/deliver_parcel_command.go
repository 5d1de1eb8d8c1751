package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
)

// DeliverParcelCommand represents the carrier completing a mission at the
// drop-off. Proof photo and notes are optional evidence.
type DeliverParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	carrierID     kernel.UUID
	proofPhotoURL string
	notes         string

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a command to complete a mission.
func NewDeliverParcelCommand(parcelID, carrierID kernel.UUID, proofPhotoURL, notes string) (DeliverParcelCommand, error) {
	cmd := DeliverParcelCommand{
		proofPhotoURL: proofPhotoURL,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return DeliverParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

// ParcelID returns the mission being completed.
func (c DeliverParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CarrierID returns the delivering carrier.
func (c DeliverParcelCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// ProofPhotoURL returns the optional delivery evidence photo.
func (c DeliverParcelCommand) ProofPhotoURL() string {
	return c.proofPhotoURL
}

// Notes returns the optional delivery notes.
func (c DeliverParcelCommand) Notes() string {
	return c.notes
}

func (c *DeliverParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *DeliverParcelCommand) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.carrierID = id
	return nil
}
