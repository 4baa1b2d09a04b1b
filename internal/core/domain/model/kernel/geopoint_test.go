package kernel_test

import (
	"math"
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		testCases := []struct {
			name string
			lat  float64
			lon  float64
		}{
			{name: "positive_pair", lat: 10.0, lon: 20.0},
			{name: "negative_pair", lat: -33.865143, lon: -70.673676},
			{name: "zero_pair", lat: 0, lon: 0},
			{name: "mixed_signs", lat: 55.7558, lon: -37.6173},
			{name: "outside_wgs84_bounds_still_accepted", lat: 200.0, lon: -400.0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.lat, tc.lon)

				require.NoError(t, err)
				require.NoError(t, point.Validate())
				assert.Equal(t, tc.lat, point.Lat())
				assert.Equal(t, tc.lon, point.Lon())
			})
		}
	})

	t.Run("non_finite_coordinates", func(t *testing.T) {
		testCases := []struct {
			name string
			lat  float64
			lon  float64
		}{
			{name: "nan_lat", lat: math.NaN(), lon: 20.0},
			{name: "nan_lon", lat: 10.0, lon: math.NaN()},
			{name: "positive_inf_lat", lat: math.Inf(1), lon: 20.0},
			{name: "negative_inf_lon", lat: 10.0, lon: math.Inf(-1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lon)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(10.0, 20.0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(10.0, 20.0)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_points", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(10.0, 20.0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(10.0, 20.5)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_point_fails", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(10.0, 20.0)
		require.NoError(t, err)
		var b kernel.GeoPoint

		_, err = a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	point, err := kernel.NewGeoPoint(10.5, -20.25)
	require.NoError(t, err)

	assert.Equal(t, "GeoPoint(10.5,-20.25)", point.String())
}
