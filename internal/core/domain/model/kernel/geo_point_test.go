package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.5074, -0.1278)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 51.5074, point.Lat(), 0.000001)
		assert.InDelta(t, -0.1278, point.Lng(), 0.000001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		cases := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"south_pole", -90, 0},
			{"north_pole", 90, 0},
			{"date_line_west", 0, -180},
			{"date_line_east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.lat, tc.lng)

				require.NoError(t, err)
				assert.InDelta(t, tc.lat, point.Lat(), 0.000001)
				assert.InDelta(t, tc.lng, point.Lng(), 0.000001)
			})
		}
	})

	t.Run("should fail on latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail on longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join both range errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(48.8566, 2.3522)
		p2, _ := kernel.NewGeoPoint(48.8566, 2.3522)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(48.8566, 2.3522)
		p2, _ := kernel.NewGeoPoint(48.8566, 2.3523)

		equal, err := p1.IsEqual(p2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value operand fails", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(48.8566, 2.3522)
		var p2 kernel.GeoPoint

		_, err := p1.IsEqual(p2)

		require.Error(t, err)
	})
}
