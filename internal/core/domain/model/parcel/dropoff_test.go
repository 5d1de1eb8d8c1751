package parcel_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDropoff(t *testing.T) {
	t.Run("creates valid dropoff", func(t *testing.T) {
		d, err := parcel.NewDropoff("office", "Acme Inc", "12 Main St")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "office", d.Kind())
		assert.Equal(t, "Acme Inc", d.Name())
		assert.Equal(t, "12 Main St", d.Address())
	})

	t.Run("kind is optional", func(t *testing.T) {
		d, err := parcel.NewDropoff("", "Acme Inc", "12 Main St")

		require.NoError(t, err)
		assert.Empty(t, d.Kind())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := parcel.NewDropoff("office", "", "12 Main St")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dropoff name")
	})

	t.Run("requires address", func(t *testing.T) {
		_, err := parcel.NewDropoff("office", "Acme Inc", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dropoff address")
	})
}

func TestDropoffValidate(t *testing.T) {
	var d parcel.Dropoff

	assert.ErrorIs(t, d.Validate(), parcel.ErrDropoffIsNotConstructed)
}
