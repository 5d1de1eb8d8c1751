package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrPickupAddressIsRequired = errors.New("pickup address is required")
)

// CreateParcelCommand represents a vendor's request to put a new parcel on
// the marketplace. The command carries everything the parcel needs except
// the price and the pickup code, which the handler derives.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID      kernel.UUID
	vendorID      kernel.UUID
	pickupAddress string
	pickupPoint   kernel.GeoPoint
	dropoff       parcel.Dropoff
	size          parcel.Size
	window        kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// All parts are validated; errors are joined so the caller sees every
// invalid field at once.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	vendorID kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	dropoff parcel.Dropoff,
	size parcel.Size,
	window kernel.TimeWindow,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setVendorID(vendorID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setPickupPoint(pickupPoint),
		cmd.setDropoff(dropoff),
		cmd.setSize(size),
		cmd.setWindow(window),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// VendorID returns the creating vendor.
func (c CreateParcelCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// PickupAddress returns the human-readable pickup address.
func (c CreateParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// PickupPoint returns the pickup coordinate.
func (c CreateParcelCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

// Dropoff returns the destination description.
func (c CreateParcelCommand) Dropoff() parcel.Dropoff {
	return c.dropoff
}

// Size returns the parcel's size class.
func (c CreateParcelCommand) Size() parcel.Size {
	return c.size
}

// Window returns the pickup time slot.
func (c CreateParcelCommand) Window() kernel.TimeWindow {
	return c.window
}

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *CreateParcelCommand) setPickupAddress(address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	c.pickupAddress = address
	return nil
}

func (c *CreateParcelCommand) setPickupPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	c.pickupPoint = point
	return nil
}

func (c *CreateParcelCommand) setDropoff(dropoff parcel.Dropoff) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	c.dropoff = dropoff
	return nil
}

func (c *CreateParcelCommand) setSize(size parcel.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.size = size
	return nil
}

func (c *CreateParcelCommand) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}
