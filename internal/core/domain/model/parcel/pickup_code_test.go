package parcel_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickupCode(t *testing.T) {
	code, err := parcel.NewPickupCode()

	require.NoError(t, err)
	require.NoError(t, code.Validate())
	assert.Len(t, code.String(), 6)
	for _, c := range code.String() {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestPickupCodeFromString(t *testing.T) {
	t.Run("accepts six digits", func(t *testing.T) {
		code, err := parcel.PickupCodeFromString("042731")

		require.NoError(t, err)
		assert.Equal(t, "042731", code.String())
	})

	t.Run("keeps leading zeros", func(t *testing.T) {
		code, err := parcel.PickupCodeFromString("000001")

		require.NoError(t, err)
		assert.Equal(t, "000001", code.String())
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := parcel.PickupCodeFromString("12345")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "6 digits")
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		_, err := parcel.PickupCodeFromString("12a456")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "only digits")
	})
}

func TestPickupCodeMatches(t *testing.T) {
	code, err := parcel.PickupCodeFromString("731042")
	require.NoError(t, err)

	assert.True(t, code.Matches("731042"))
	assert.False(t, code.Matches("731043"))
	assert.False(t, code.Matches(""))
	assert.False(t, code.Matches("7310421"))
}

func TestPickupCodeValidate(t *testing.T) {
	var code parcel.PickupCode

	assert.ErrorIs(t, code.Validate(), parcel.ErrPickupCodeIsNotConstructed)
}
