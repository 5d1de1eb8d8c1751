package parcel

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory functions.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel represents a shipment request in the marketplace. It is the
// aggregate root that owns the whole mission lifecycle: carrier acceptance,
// the packaging handshake, pickup-code verification, transit, and delivery.
//
// Parcel follows these invariants:
//   - Status and packaging sub-state are never independently inconsistent
//     (a parcel cannot be Delivered without having passed PickedUp, nor
//     PickedUp without PackagingConfirmed)
//   - Pending parcels have no carrier; accepted parcels always do
//   - Every transition verifies caller identity against the role it permits
//     before mutating state
//   - Parcels are never physically deleted, only soft-cancelled
//
// All mutation happens through the transition methods; the struct uses
// private fields so illegal writes are unrepresentable outside the package.
type Parcel struct {
	// id is the unique identifier for the parcel; it doubles as the mission
	// identifier once a carrier accepts.
	id kernel.UUID

	// vendorID is the owning vendor. Pre-acceptance the vendor holds all
	// mutation rights; post-acceptance rights split per role.
	vendorID kernel.UUID

	// carrierID is the assigned carrier (nil until accepted).
	carrierID *kernel.UUID

	// pickupAddress is the human-readable pickup address.
	pickupAddress string

	// pickupPoint is the pickup coordinate used by the geospatial matcher.
	pickupPoint kernel.GeoPoint

	// dropoff describes the destination.
	dropoff Dropoff

	// size is the parcel's size class; it determines pricing.
	size Size

	// pricing is the split captured at creation. Delivery reuses this value
	// rather than recomputing, so a later tariff change never desynchronizes
	// the vendor charge from the carrier payout.
	pricing PricingResult

	// window is the pickup time slot.
	window kernel.TimeWindow

	// pickupCode is the 6-digit secret verified at physical pickup.
	pickupCode PickupCode

	// status is the current lifecycle state.
	status Status

	// packaging is the handshake sub-state within Accepted.
	packaging Packaging

	// packagingPhotoURL is the carrier-submitted photo evidence.
	packagingPhotoURL string

	// packagingRejectReason records why the vendor rejected the last submission.
	packagingRejectReason string

	// deliveryProofURL and deliveryNotes are optional evidence attached at delivery.
	deliveryProofURL string
	deliveryNotes    string

	// cancelledBy and cancelReason record who cancelled and why.
	cancelledBy  *kernel.UUID
	cancelReason string

	// departurePoint is where the carrier started the journey (informational).
	departurePoint *kernel.GeoPoint

	// Transition timestamps. Nil means the transition has not happened.
	createdAt            time.Time
	acceptedAt           *time.Time
	departedAt           *time.Time
	arrivedAt            *time.Time
	packagingSubmittedAt *time.Time
	packagingConfirmedAt *time.Time
	pickedUpAt           *time.Time
	deliveredAt          *time.Time
	cancelledAt          *time.Time

	// persistedStatus/persistedPackaging snapshot the state the aggregate was
	// loaded with. The repository conditions its update on this pair so two
	// racing transitions cannot both win (compare-and-swap at the storage
	// boundary).
	persistedStatus    Status
	persistedPackaging Packaging

	// guard ensures the parcel was created via a factory function.
	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel in Pending status with no packaging activity.
// This is the entry point of the lifecycle: the vendor submits the shipment,
// the pricing split and pickup code are captured here and never regenerated.
//
// All parameters are validated; errors are joined so the caller sees every
// invalid field at once.
func NewParcel(
	id kernel.UUID,
	vendorID kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	dropoff Dropoff,
	size Size,
	pricing PricingResult,
	window kernel.TimeWindow,
	pickupCode PickupCode,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:    Pending,
		packaging: PackagingNone,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setVendorID(vendorID),
		p.setPickupAddress(pickupAddress),
		p.setPickupPoint(pickupPoint),
		p.setDropoff(dropoff),
		p.setSize(size),
		p.setPricing(pricing),
		p.setWindow(window),
		p.setPickupCode(pickupCode),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot carries the complete persisted state of a parcel for
// reconstruction via RestoreParcel. The repository layer fills it from the
// database row; domain code never builds one.
type Snapshot struct {
	ID                    kernel.UUID
	VendorID              kernel.UUID
	CarrierID             *kernel.UUID
	PickupAddress         string
	PickupPoint           kernel.GeoPoint
	Dropoff               Dropoff
	Size                  Size
	Pricing               PricingResult
	Window                kernel.TimeWindow
	PickupCode            PickupCode
	Status                Status
	Packaging             Packaging
	PackagingPhotoURL     string
	PackagingRejectReason string
	DeliveryProofURL      string
	DeliveryNotes         string
	CancelledBy           *kernel.UUID
	CancelReason          string
	DeparturePoint        *kernel.GeoPoint
	CreatedAt             time.Time
	AcceptedAt            *time.Time
	DepartedAt            *time.Time
	ArrivedAt             *time.Time
	PackagingSubmittedAt  *time.Time
	PackagingConfirmedAt  *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel it accepts any lifecycle state, but still verifies the
// cross-field invariants (status/packaging consistency, carrier presence).
//
// The restored aggregate remembers the loaded status and packaging pair;
// the repository uses that snapshot as the expected-state half of its
// conditional update.
func RestoreParcel(snap Snapshot) (*Parcel, error) {
	p := &Parcel{
		carrierID:             snap.CarrierID,
		packagingPhotoURL:     snap.PackagingPhotoURL,
		packagingRejectReason: snap.PackagingRejectReason,
		deliveryProofURL:      snap.DeliveryProofURL,
		deliveryNotes:         snap.DeliveryNotes,
		cancelledBy:           snap.CancelledBy,
		cancelReason:          snap.CancelReason,
		departurePoint:        snap.DeparturePoint,
		createdAt:             snap.CreatedAt,
		acceptedAt:            snap.AcceptedAt,
		departedAt:            snap.DepartedAt,
		arrivedAt:             snap.ArrivedAt,
		packagingSubmittedAt:  snap.PackagingSubmittedAt,
		packagingConfirmedAt:  snap.PackagingConfirmedAt,
		pickedUpAt:            snap.PickedUpAt,
		deliveredAt:           snap.DeliveredAt,
		cancelledAt:           snap.CancelledAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(snap.ID),
		p.setVendorID(snap.VendorID),
		p.setPickupAddress(snap.PickupAddress),
		p.setPickupPoint(snap.PickupPoint),
		p.setDropoff(snap.Dropoff),
		p.setSize(snap.Size),
		p.setPricing(snap.Pricing),
		p.setWindow(snap.Window),
		p.setPickupCode(snap.PickupCode),
		snap.Status.Validate(),
		snap.Status.ValidatePackaging(snap.Packaging),
		snap.Status.ValidateCanHaveCarrier(snap.CarrierID != nil),
	); err != nil {
		return nil, err
	}

	if snap.CarrierID != nil {
		if err := snap.CarrierID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = snap.Status
	p.packaging = snap.Packaging
	p.persistedStatus = snap.Status
	p.persistedPackaging = snap.Packaging

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}

	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// VendorID returns the owning vendor's identifier.
func (p *Parcel) VendorID() kernel.UUID {
	return p.vendorID
}

// CarrierID returns the assigned carrier's identifier.
// Returns nil while the parcel is unassigned.
func (p *Parcel) CarrierID() *kernel.UUID {
	return p.carrierID
}

// PickupAddress returns the human-readable pickup address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// PickupPoint returns the pickup coordinate.
func (p *Parcel) PickupPoint() kernel.GeoPoint {
	return p.pickupPoint
}

// Dropoff returns the destination description.
func (p *Parcel) Dropoff() Dropoff {
	return p.dropoff
}

// Size returns the parcel's size class.
func (p *Parcel) Size() Size {
	return p.size
}

// Pricing returns the money split captured at creation.
func (p *Parcel) Pricing() PricingResult {
	return p.pricing
}

// Window returns the pickup time slot.
func (p *Parcel) Window() kernel.TimeWindow {
	return p.window
}

// PickupCode returns the 6-digit pickup secret.
// Only the vendor-facing surface should display it.
func (p *Parcel) PickupCode() PickupCode {
	return p.pickupCode
}

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// Packaging returns the packaging handshake sub-state.
func (p *Parcel) Packaging() Packaging {
	return p.packaging
}

// PackagingPhotoURL returns the carrier-submitted packaging evidence.
func (p *Parcel) PackagingPhotoURL() string {
	return p.packagingPhotoURL
}

// PackagingRejectReason returns the vendor's last rejection reason.
func (p *Parcel) PackagingRejectReason() string {
	return p.packagingRejectReason
}

// DeliveryProofURL returns the optional delivery evidence photo.
func (p *Parcel) DeliveryProofURL() string {
	return p.deliveryProofURL
}

// DeliveryNotes returns the optional carrier notes attached at delivery.
func (p *Parcel) DeliveryNotes() string {
	return p.deliveryNotes
}

// CancelledBy returns who cancelled the parcel (nil if not cancelled).
func (p *Parcel) CancelledBy() *kernel.UUID {
	return p.cancelledBy
}

// CancelReason returns the recorded cancellation reason.
func (p *Parcel) CancelReason() string {
	return p.cancelReason
}

// DeparturePoint returns where the carrier started the journey, if recorded.
func (p *Parcel) DeparturePoint() *kernel.GeoPoint {
	return p.departurePoint
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// AcceptedAt returns when a carrier accepted the mission, if it happened.
func (p *Parcel) AcceptedAt() *time.Time {
	return p.acceptedAt
}

// DepartedAt returns when the carrier started the journey, if recorded.
func (p *Parcel) DepartedAt() *time.Time {
	return p.departedAt
}

// ArrivedAt returns when the carrier arrived at pickup, if recorded.
func (p *Parcel) ArrivedAt() *time.Time {
	return p.arrivedAt
}

// PackagingSubmittedAt returns when the carrier last submitted packaging
// evidence. The auto-confirmation grace period is measured from this instant.
func (p *Parcel) PackagingSubmittedAt() *time.Time {
	return p.packagingSubmittedAt
}

// PackagingConfirmedAt returns when packaging was confirmed, if it happened.
func (p *Parcel) PackagingConfirmedAt() *time.Time {
	return p.packagingConfirmedAt
}

// PickedUpAt returns when the pickup code was verified, if it happened.
func (p *Parcel) PickedUpAt() *time.Time {
	return p.pickedUpAt
}

// DeliveredAt returns when the parcel was delivered, if it happened.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// CancelledAt returns when the parcel was cancelled, if it happened.
func (p *Parcel) CancelledAt() *time.Time {
	return p.cancelledAt
}

// PersistedStatus returns the status the aggregate was loaded with.
// The repository conditions its update on this value.
func (p *Parcel) PersistedStatus() Status {
	return p.persistedStatus
}

// PersistedPackaging returns the packaging sub-state the aggregate was loaded with.
func (p *Parcel) PersistedPackaging() Packaging {
	return p.persistedPackaging
}

// MarkPersisted records that the current state has been written to storage,
// advancing the conditional-update snapshot. Called by the repository after
// a successful write; domain code has no use for it.
func (p *Parcel) MarkPersisted() {
	p.persistedStatus = p.status
	p.persistedPackaging = p.packaging
}

// Accept assigns the mission to a carrier and moves the parcel to Accepted.
//
// Valid only from Pending; any other status fails with a StateConflictError,
// which is how the losing side of a double-accept race observes the loss.
// The pickup code was generated at creation and merely becomes relevant here.
func (p *Parcel) Accept(carrierID kernel.UUID, now time.Time) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.carrierID = &carrierID
	p.acceptedAt = &now
	return nil
}

// StartJourney records that the assigned carrier departed toward the pickup
// point. Informational: the status does not change.
//
// Fails with Forbidden if the caller is not the assigned carrier, and with
// StateConflict if the parcel is not in Accepted status.
func (p *Parcel) StartJourney(carrierID kernel.UUID, from kernel.GeoPoint, now time.Time) error {
	if err := p.ensureAssignedCarrier(carrierID); err != nil {
		return err
	}
	if p.status != Accepted {
		return errs.NewStateConflictError("parcel", p.status.String())
	}
	if err := from.Validate(); err != nil {
		return err
	}

	p.departedAt = &now
	p.departurePoint = &from
	return nil
}

// ArriveAtPickup records that the assigned carrier reached the pickup
// address. Informational: the status does not change; the packaging
// handshake begins next.
func (p *Parcel) ArriveAtPickup(carrierID kernel.UUID, now time.Time) error {
	if err := p.ensureAssignedCarrier(carrierID); err != nil {
		return err
	}
	if p.status != Accepted {
		return errs.NewStateConflictError("parcel", p.status.String())
	}

	p.arrivedAt = &now
	return nil
}

// SubmitPackaging attaches the carrier's packaging photo evidence and moves
// the handshake sub-state to PackagingPending, starting the vendor
// confirmation deadline clock. Pickup is not yet allowed.
//
// A carrier may resubmit while still pending, replacing the evidence and
// restarting the clock.
func (p *Parcel) SubmitPackaging(carrierID kernel.UUID, photoURL string, now time.Time) error {
	if err := p.ensureAssignedCarrier(carrierID); err != nil {
		return err
	}
	if p.status != Accepted {
		return errs.NewStateConflictError("parcel", p.status.String())
	}
	if photoURL == "" {
		return errs.NewValueIsRequiredError("packaging photo")
	}

	newPackaging, err := p.packaging.Submit()
	if err != nil {
		return err
	}

	p.packaging = newPackaging
	p.packagingPhotoURL = photoURL
	p.packagingSubmittedAt = &now
	return nil
}

// VendorConfirmPackaging approves the packaging on behalf of the owning
// vendor, gating the carrier's pickup-code verification.
//
// Fails with Forbidden if the caller is not the parcel's vendor, and with
// StateConflict if the handshake is not pending.
func (p *Parcel) VendorConfirmPackaging(vendorID kernel.UUID, now time.Time) error {
	if err := p.ensureVendor(vendorID); err != nil {
		return err
	}

	return p.confirmPackaging(now)
}

// SystemConfirmPackaging approves the packaging on the vendor's behalf.
// The auto-confirmation sweep invokes this after the grace period expires so
// the carrier is not indefinitely blocked. The state precondition is the
// same as the vendor path, which is what makes the sweep idempotent.
func (p *Parcel) SystemConfirmPackaging(now time.Time) error {
	return p.confirmPackaging(now)
}

func (p *Parcel) confirmPackaging(now time.Time) error {
	newPackaging, err := p.packaging.Confirm()
	if err != nil {
		return err
	}

	p.packaging = newPackaging
	p.packagingConfirmedAt = &now
	return nil
}

// VendorRejectPackaging rejects the carrier's packaging evidence and resets
// the handshake so the carrier must redo packaging. The parcel stays
// Accepted. A reason is mandatory.
func (p *Parcel) VendorRejectPackaging(vendorID kernel.UUID, reason string, now time.Time) error {
	if err := p.ensureVendor(vendorID); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newPackaging, err := p.packaging.Reject()
	if err != nil {
		return err
	}

	p.packaging = newPackaging
	p.packagingRejectReason = reason
	return nil
}

// ConfirmPickup verifies the supplied pickup code and moves the parcel to
// PickedUp.
//
// Preconditions, checked in order:
//   - caller is the assigned carrier (Forbidden otherwise)
//   - packaging sub-state is PackagingConfirmed (StateConflict otherwise)
//   - the code matches the stored 6-digit secret (InvalidCode otherwise)
func (p *Parcel) ConfirmPickup(carrierID kernel.UUID, code string, now time.Time) error {
	if err := p.ensureAssignedCarrier(carrierID); err != nil {
		return err
	}
	if p.packaging != PackagingConfirmed {
		return errs.NewStateConflictError("packaging", p.packaging.String())
	}

	newStatus, err := p.status.PickUp()
	if err != nil {
		return err
	}

	if !p.pickupCode.Matches(code) {
		return errs.NewInvalidCodeError("pickup code")
	}

	p.status = newStatus
	p.pickedUpAt = &now
	return nil
}

// Deliver completes the mission: the parcel moves to Delivered and the
// optional proof photo and notes are recorded.
//
// The payout released downstream is the one captured at creation (see
// Pricing); delivery does not reprice the parcel.
func (p *Parcel) Deliver(carrierID kernel.UUID, proofPhotoURL, notes string, now time.Time) error {
	if err := p.ensureAssignedCarrier(carrierID); err != nil {
		return err
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.deliveryProofURL = proofPhotoURL
	p.deliveryNotes = notes
	p.deliveredAt = &now
	return nil
}

// Cancel soft-cancels the parcel from any non-terminal state.
//
// Only the owning vendor or the assigned carrier may cancel; anyone else
// fails with Forbidden. The carrier reference is kept for audit, but a
// Cancelled parcel is terminal and never matchable again. The reason is
// optional.
func (p *Parcel) Cancel(callerID kernel.UUID, reason string, now time.Time) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	if !p.vendorID.IsEqual(callerID) &&
		(p.carrierID == nil || !p.carrierID.IsEqual(callerID)) {
		return errs.NewForbiddenError("caller is neither the vendor nor the assigned carrier")
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.cancelledBy = &callerID
	p.cancelReason = reason
	p.cancelledAt = &now
	return nil
}

// ensureAssignedCarrier verifies the caller is the carrier holding the mission.
func (p *Parcel) ensureAssignedCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if p.carrierID == nil || !p.carrierID.IsEqual(carrierID) {
		return errs.NewForbiddenError("caller is not the assigned carrier")
	}
	return nil
}

// ensureVendor verifies the caller owns the parcel.
func (p *Parcel) ensureVendor(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	if !p.vendorID.IsEqual(vendorID) {
		return errs.NewForbiddenError("caller is not the parcel vendor")
	}
	return nil
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setVendorID validates and sets the owning vendor.
func (p *Parcel) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	p.vendorID = vendorID
	return nil
}

func (p *Parcel) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup address")
	}
	p.pickupAddress = address
	return nil
}

func (p *Parcel) setPickupPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	p.pickupPoint = point
	return nil
}

func (p *Parcel) setDropoff(dropoff Dropoff) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	p.dropoff = dropoff
	return nil
}

func (p *Parcel) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setPricing(pricing PricingResult) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	p.pricing = pricing
	return nil
}

func (p *Parcel) setWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	p.window = window
	return nil
}

func (p *Parcel) setPickupCode(code PickupCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	p.pickupCode = code
	return nil
}
