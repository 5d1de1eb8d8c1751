// Package services contains stateless domain services: logic that spans
// aggregates and therefore cannot live inside a single one.
//
// PricingEngine turns a parcel size class into the base/fee/payout money
// split. MissionMatcher filters and orders the pool of pending parcels for
// one carrier's position and coverage radius.
package services
