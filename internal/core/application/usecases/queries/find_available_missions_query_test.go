package queries_test

import (
	"errors"
	"testing"

	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFindAvailableMissionsQuery(t *testing.T) {
	t.Run("valid without radius", func(t *testing.T) {
		carrierID := kernel.NewUUID()

		query, err := queries.NewFindAvailableMissionsQuery(carrierID, nil)

		require.NoError(t, err)
		assert.True(t, query.CarrierID().IsEqual(carrierID))
		assert.Nil(t, query.RadiusKm())
		assert.NoError(t, query.Validate())
	})

	t.Run("valid with radius", func(t *testing.T) {
		radius := 25.0

		query, err := queries.NewFindAvailableMissionsQuery(kernel.NewUUID(), &radius)

		require.NoError(t, err)
		require.NotNil(t, query.RadiusKm())
		assert.InDelta(t, 25.0, *query.RadiusKm(), 0.0001)
	})

	t.Run("radius out of bounds", func(t *testing.T) {
		for _, radius := range []float64{0.5, 50.1} {
			_, err := queries.NewFindAvailableMissionsQuery(kernel.NewUUID(), &radius)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("invalid carrier id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := queries.NewFindAvailableMissionsQuery(zero, nil)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.FindAvailableMissionsQuery

		assert.True(t, errors.Is(query.Validate(),
			queries.ErrFindAvailableMissionsQueryIsNotConstructed))
	})
}

func TestNewGetCarrierMissionsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		carrierID := kernel.NewUUID()

		query, err := queries.NewGetCarrierMissionsQuery(carrierID)

		require.NoError(t, err)
		assert.True(t, query.CarrierID().IsEqual(carrierID))
		assert.NoError(t, query.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetCarrierMissionsQuery

		assert.True(t, errors.Is(query.Validate(),
			queries.ErrGetCarrierMissionsQueryIsNotConstructed))
	})
}
