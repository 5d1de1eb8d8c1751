package kernel

import (
	"fmt"
	"time"

	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an improperly initialized TimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow represents the pickup slot of a parcel: the interval during
// which the carrier is expected to arrive at the pickup address.
// It is an immutable value object; the start must precede the end.
type TimeWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow from start and end instants.
// Both must be non-zero and start must be strictly before end.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("time window bounds")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("start %s is not before end %s", start, end))
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the TimeWindow was properly constructed using the constructor.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the beginning of the pickup slot.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the end of the pickup slot.
func (w TimeWindow) End() time.Time {
	return w.end
}

// String returns a human-readable representation of the window.
func (w TimeWindow) String() string {
	return fmt.Sprintf("TimeWindow(%s..%s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
