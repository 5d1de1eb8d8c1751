// Package kernel provides core domain primitives for the parcel marketplace.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object for latitude/longitude pairs with great-circle distance
//   - Money: A cents-based value object for monetary amounts with half-up rounding
//   - TimeWindow: A value object for the pickup time slot of a parcel
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
