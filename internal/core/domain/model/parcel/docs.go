// Package parcel contains the Parcel aggregate, the heart of the delivery
// marketplace domain.
//
// A Parcel travels through a lifecycle driven by three actors: the vendor who
// created it, the carrier who accepted the mission, and the system scheduler
// that auto-confirms stalled packaging. The aggregate enforces every state
// transition, the packaging handshake sub-state, pickup-code verification and
// caller-role checks, so no use case can put a parcel into an inconsistent
// state.
//
// Value objects in this package: Status and Packaging (the state machine),
// Size (pricing tier key), Dropoff (destination), PickupCode (6-digit pickup
// secret) and PricingResult (base/fee/payout split).
package parcel
