// Package errs provides standardized error types for the parcel marketplace.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure kinds the mission
// lifecycle engine surfaces:
//   - ObjectNotFoundError: an entity is absent from storage
//   - ForbiddenError: the caller lacks the role or ownership for the action
//   - StateConflictError: the current status does not permit the transition
//   - InvalidCodeError: a pickup-code mismatch
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Transition handlers surface these as typed failures; the HTTP layer
// translates them to status codes and the sweep job logs them per mission.
package errs
