package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
)

// Lifecycle event names published through the EventNotifier.
const (
	EventParcelCreated      = "parcel.created"
	EventParcelAccepted     = "parcel.accepted"
	EventJourneyStarted     = "parcel.journey_started"
	EventArrivedAtPickup    = "parcel.arrived_at_pickup"
	EventPackagingSubmitted = "parcel.packaging_submitted"
	EventPackagingConfirmed = "parcel.packaging_confirmed"
	EventPackagingRejected  = "parcel.packaging_rejected"
	EventParcelPickedUp     = "parcel.picked_up"
	EventParcelDelivered    = "parcel.delivered"
	EventPaymentReleased    = "parcel.payment_released"
	EventParcelCancelled    = "parcel.cancelled"
)

// EventNotifier publishes lifecycle events to interested parties (vendor and
// carrier notifications, audit trails).
//
// Notification is fire-and-forget: implementations must never fail the
// business operation that emitted the event, and must tolerate being called
// after the surrounding transaction committed.
type EventNotifier interface {
	// Notify publishes one lifecycle event about a parcel.
	Notify(ctx context.Context, event string, parcelID kernel.UUID)
}
