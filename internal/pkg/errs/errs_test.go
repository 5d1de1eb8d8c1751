package errs_test

import (
	"errors"
	"testing"

	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", "123")

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("parcelId", "123", cause)

		assert.Equal(t, "parcelId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parcelId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("size")

		assert.Equal(t, "size", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: size", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("size", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: size (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("radiusKm", 75.0, 1.0, 50.0)

		assert.Equal(t, "radiusKm", err.ParamName)
		assert.Equal(t, 75.0, err.Value)
		assert.Equal(t, 1.0, err.Min)
		assert.Equal(t, 50.0, err.Max)
		assert.Equal(t, "value is invalid: 75 is radiusKm, min value is 1, max value is 50", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("reason")

		assert.Equal(t, "reason", err.ParamName)
		assert.Equal(t, "value is required: reason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("reason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: reason (cause: missing required field)", err.Error())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("caller is not the parcel vendor")

		assert.Equal(t, "operation is forbidden: caller is not the parcel vendor", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("carrier mismatch")
		err := errs.NewForbiddenErrorWithCause("caller", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation is forbidden: caller (cause: carrier mismatch)", err.Error())
	})
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("parcel", "Delivered")

		assert.Equal(t, "parcel", err.ParamName)
		assert.Equal(t, "Delivered", err.Current)
		assert.Equal(t, "state conflict: parcel is in state Delivered", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("another carrier already accepted")
		err := errs.NewStateConflictErrorWithCause("parcel", "Accepted", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"state conflict: parcel is in state Accepted (cause: another carrier already accepted)",
			err.Error())
	})
}

func TestInvalidCodeError(t *testing.T) {
	t.Run("NewInvalidCodeError", func(t *testing.T) {
		err := errs.NewInvalidCodeError("pickup code")

		assert.Equal(t, "code is invalid: pickup code", err.Error())
		assert.Equal(t, errs.ErrInvalidCode, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "operation is forbidden", errs.ErrForbidden.Error())
		assert.Equal(t, "state conflict", errs.ErrStateConflict.Error())
		assert.Equal(t, "code is invalid", errs.ErrInvalidCode.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("parcelId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("size"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("radiusKm", 75, 1, 50), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewForbiddenError("caller"), errs.ErrForbidden)
		require.ErrorIs(t, errs.NewStateConflictError("parcel", "Delivered"), errs.ErrStateConflict)
		require.ErrorIs(t, errs.NewInvalidCodeError("pickup code"), errs.ErrInvalidCode)
	})
}
