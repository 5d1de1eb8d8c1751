package parcel

import (
	"errors"

	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// ErrDropoffIsNotConstructed is returned when attempting to use an improperly initialized Dropoff.
var ErrDropoffIsNotConstructed = errs.NewValueIsRequiredError(
	"dropoff must be created via NewDropoff constructor")

// Dropoff describes the destination of a parcel: a free-form place type
// (residence, office, locker), the recipient or place name, and the address.
// It is an immutable value object.
type Dropoff struct { //nolint:recvcheck //using for validation
	kind    string
	name    string
	address string
	guard   guard.ConstructorGuard
}

// NewDropoff creates a new Dropoff description.
// Name and address are required; kind is optional free text.
func NewDropoff(kind, name, address string) (Dropoff, error) {
	d := Dropoff{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setName(name), d.setAddress(address)); err != nil {
		return Dropoff{}, err
	}

	return d, nil
}

// Validate checks if the Dropoff was properly constructed using the constructor.
func (d Dropoff) Validate() error {
	return d.guard.Validate(ErrDropoffIsNotConstructed)
}

// Kind returns the place type of the drop-off.
func (d Dropoff) Kind() string {
	return d.kind
}

// Name returns the recipient or place name.
func (d Dropoff) Name() string {
	return d.name
}

// Address returns the drop-off address.
func (d Dropoff) Address() string {
	return d.address
}

func (d *Dropoff) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("dropoff name")
	}
	d.name = name
	return nil
}

func (d *Dropoff) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoff address")
	}
	d.address = address
	return nil
}
