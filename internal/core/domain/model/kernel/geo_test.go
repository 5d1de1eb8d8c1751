package kernel_test

import (
	"testing"

	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "valid point", lat: 48.8566, lon: 2.3522, wantErr: false},
		{name: "valid point at min bounds", lat: kernel.MinLatitude, lon: kernel.MinLongitude, wantErr: false},
		{name: "valid point at max bounds", lat: kernel.MaxLatitude, lon: kernel.MaxLongitude, wantErr: false},
		{name: "latitude too small", lat: -90.0001, lon: 0, wantErr: true},
		{name: "latitude too large", lat: 90.0001, lon: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lon: -180.0001, wantErr: true},
		{name: "longitude too large", lat: 0, lon: 180.0001, wantErr: true},
		{name: "both invalid", lat: 100, lon: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lat, tt.lon)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, p.Validate())
			assert.InDelta(t, tt.lat, p.Lat(), 1e-9)
			assert.InDelta(t, tt.lon, p.Lon(), 1e-9)
		})
	}
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(41.0082, 28.9784)
		require.NoError(t, err)

		d, err := p.DistanceKm(p)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("known distance Paris to London", func(t *testing.T) {
		paris, err := kernel.NewGeoPoint(48.8566, 2.3522)
		require.NoError(t, err)
		london, err := kernel.NewGeoPoint(51.5074, -0.1278)
		require.NoError(t, err)

		d, err := paris.DistanceKm(london)

		require.NoError(t, err)
		// Great-circle distance is about 344 km.
		assert.InDelta(t, 344, d, 2)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(40.7128, -74.0060)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(34.0522, -118.2437)
		require.NoError(t, err)

		ab, err := a.DistanceKm(b)
		require.NoError(t, err)
		ba, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(10, 20)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(11, 20)
		require.NoError(t, err)

		d, err := a.DistanceKm(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.2, d, 0.5)
	})

	t.Run("unconstructed points are rejected", func(t *testing.T) {
		var zero kernel.GeoPoint
		p, err := kernel.NewGeoPoint(1, 1)
		require.NoError(t, err)

		_, err = p.DistanceKm(zero)

		require.Error(t, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates are equal", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(5, 7)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(5, 7)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates are not equal", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(5, 7)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(5, 8)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}
