package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels follow
// the correct marketplace workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// The packaging handshake between Accepted and PickedUp is tracked by the
// Packaging sub-state; see Packaging and Status.ValidatePackaging.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a vendor creates a parcel.
	// Pending parcels sit in the matching pool waiting for a carrier.
	Pending

	// Accepted indicates a carrier has taken the delivery mission.
	// The packaging handshake and pickup-code verification happen here.
	Accepted

	// PickedUp indicates the carrier verified the pickup code and holds the parcel.
	PickedUp

	// Delivered indicates the parcel reached its drop-off. Terminal.
	Delivered

	// Cancelled indicates the vendor or carrier cancelled the delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (carrier takes the mission)
//
// Any other current status fails with a StateConflictError. This is also the
// check that surfaces a double-accept: the second carrier sees the parcel
// already Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("parcel", s.String())
	}

	return Accepted, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Accepted -> PickedUp (pickup code verified)
func (s Status) PickUp() (Status, error) {
	if s != Accepted {
		return 0, errs.NewStateConflictError("parcel", s.String())
	}

	return PickedUp, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered (carrier completed the drop-off)
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewStateConflictError("parcel", s.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancellation is final: a cancelled
// parcel never returns to Pending and is never matchable again.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewStateConflictError("parcel", s.String())
	}

	return Cancelled, nil
}

// ValidateCanHaveCarrier validates the consistency between parcel status and
// carrier assignment.
//
// Business rules:
//   - Pending parcels must not have a carrier assigned
//   - Accepted, PickedUp and Delivered parcels must have a carrier assigned
//   - Cancelled parcels may keep their carrier reference for audit
func (s Status) ValidateCanHaveCarrier(carrier bool) error {
	if carrier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a carrier", s.String()))
	}

	if !carrier && (s == Accepted || s == PickedUp || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no carrier", s.String()))
	}

	return nil
}

// ValidatePackaging validates the consistency between the status and the
// packaging sub-state, making illegal combinations unrepresentable at the
// aggregate boundary.
//
// Business rules:
//   - Pending parcels have no packaging activity (PackagingNone)
//   - PickedUp and Delivered parcels must have passed PackagingConfirmed
//   - Accepted parcels may be in any packaging sub-state
//   - Cancelled parcels freeze whatever sub-state they were in
func (s Status) ValidatePackaging(p Packaging) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch s {
	case Pending:
		if p != PackagingNone {
			return errs.NewValueIsInvalidErrorWithCause("packaging",
				fmt.Errorf("%s packaging is inconsistent with %s status", p.String(), s.String()))
		}
	case PickedUp, Delivered:
		if p != PackagingConfirmed {
			return errs.NewValueIsInvalidErrorWithCause("packaging",
				fmt.Errorf("%s packaging is inconsistent with %s status", p.String(), s.String()))
		}
	case Accepted, Cancelled:
		// any sub-state is consistent
	case Unknown:
		return errs.NewValueIsInvalidError("status")
	}

	return nil
}

// Packaging represents the two-party packaging handshake sub-state of a
// parcel: the carrier submits photo evidence, the vendor confirms or rejects.
//
// Sub-state transitions:
//
//	PackagingNone ──> PackagingPending ──> PackagingConfirmed
//	       ▲                 │
//	       └─────────────────┘
//	        (vendor rejection)
type Packaging int

const (
	// PackagingUnknown represents an invalid or undefined sub-state.
	PackagingUnknown Packaging = iota

	// PackagingNone means no packaging evidence has been submitted yet,
	// or the vendor rejected the last submission.
	PackagingNone

	// PackagingPending means the carrier submitted photo evidence and the
	// vendor confirmation deadline clock is running.
	PackagingPending

	// PackagingConfirmed means the vendor (or the system, after the grace
	// period) approved the packaging. This gates pickup-code verification.
	PackagingConfirmed
)

// getPackagingStrings returns a map of Packaging values to their string representations.
func getPackagingStrings() map[Packaging]string {
	return map[Packaging]string{
		PackagingUnknown:   "Unknown",
		PackagingNone:      "None",
		PackagingPending:   "Pending",
		PackagingConfirmed: "Confirmed",
	}
}

// Validate checks if the Packaging value is valid.
func (p Packaging) Validate() error {
	if p != PackagingNone && p != PackagingPending && p != PackagingConfirmed {
		return errs.NewValueIsInvalidErrorWithCause("packaging",
			fmt.Errorf("%d is not a valid packaging sub-state", p))
	}
	return nil
}

// String returns the human-readable name of the sub-state.
func (p Packaging) String() string {
	if str, ok := getPackagingStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Submit transitions the sub-state to PackagingPending.
//
// Valid transitions:
//   - PackagingNone -> PackagingPending (first submission, or after rejection)
//   - PackagingPending -> PackagingPending (carrier replaces the evidence)
func (p Packaging) Submit() (Packaging, error) {
	if p != PackagingNone && p != PackagingPending {
		return 0, errs.NewStateConflictError("packaging", p.String())
	}

	return PackagingPending, nil
}

// Confirm transitions the sub-state to PackagingConfirmed.
//
// Valid transitions:
//   - PackagingPending -> PackagingConfirmed (vendor or system approval)
func (p Packaging) Confirm() (Packaging, error) {
	if p != PackagingPending {
		return 0, errs.NewStateConflictError("packaging", p.String())
	}

	return PackagingConfirmed, nil
}

// Reject transitions the sub-state back to PackagingNone.
//
// Valid transitions:
//   - PackagingPending -> PackagingNone (vendor rejection, carrier redoes packaging)
func (p Packaging) Reject() (Packaging, error) {
	if p != PackagingPending {
		return 0, errs.NewStateConflictError("packaging", p.String())
	}

	return PackagingNone, nil
}
