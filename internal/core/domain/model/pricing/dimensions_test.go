package pricing_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/pricing"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionUnitFromString(t *testing.T) {
	t.Run("should parse valid units", func(t *testing.T) {
		unit, err := pricing.DimensionUnitFromString("cm")
		require.NoError(t, err)
		assert.Equal(t, pricing.Centimeters, unit)

		unit, err = pricing.DimensionUnitFromString("in")
		require.NoError(t, err)
		assert.Equal(t, pricing.Inches, unit)
	})

	t.Run("should accept the spelled-out inches alias", func(t *testing.T) {
		unit, err := pricing.DimensionUnitFromString("inches")
		require.NoError(t, err)
		assert.Equal(t, pricing.Inches, unit)
		assert.Equal(t, "in", unit.String())
	})

	t.Run("should reject invalid units", func(t *testing.T) {
		for _, s := range []string{"", "meters", "CM", "centimeters"} {
			_, err := pricing.DimensionUnitFromString(s)
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestNewDimensions(t *testing.T) {
	t.Run("should create dimensions with positive values", func(t *testing.T) {
		dims, err := pricing.NewDimensions(100, 50, 40, pricing.Centimeters)
		require.NoError(t, err)
		assert.Equal(t, 100.0, dims.Length())
		assert.Equal(t, 50.0, dims.Width())
		assert.Equal(t, 40.0, dims.Height())
		assert.Equal(t, pricing.Centimeters, dims.Unit())
		assert.True(t, dims.IsMeasured())
	})

	t.Run("should allow zero values for unmeasured parcels", func(t *testing.T) {
		dims, err := pricing.NewDimensions(0, 0, 0, pricing.Centimeters)
		require.NoError(t, err)
		assert.False(t, dims.IsMeasured())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := pricing.NewDimensions(-1, 50, 40, pricing.Centimeters)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject invalid unit", func(t *testing.T) {
		_, err := pricing.NewDimensions(100, 50, 40, pricing.DimensionUnitUnknown)
		require.Error(t, err)
	})

	t.Run("should reject zero value struct", func(t *testing.T) {
		var dims pricing.Dimensions
		require.ErrorIs(t, dims.Validate(), pricing.ErrDimensionsAreNotConstructed)
	})
}

func TestDimensions_CBM(t *testing.T) {
	t.Run("should compute CBM from centimeters", func(t *testing.T) {
		// 100 × 50 × 40 = 200,000 cm³ = 0.2 m³
		dims, err := pricing.NewDimensions(100, 50, 40, pricing.Centimeters)
		require.NoError(t, err)
		assert.Equal(t, 0.2, dims.CBM())
	})

	t.Run("should compute CBM from inches", func(t *testing.T) {
		// 61,024 in³ converts to exactly 1 m³
		dims, err := pricing.NewDimensions(61024, 1, 1, pricing.Inches)
		require.NoError(t, err)
		assert.Equal(t, 1.0, dims.CBM())
	})

	t.Run("should round to six decimal places", func(t *testing.T) {
		dims, err := pricing.NewDimensions(10.1, 10.1, 10.1, pricing.Centimeters)
		require.NoError(t, err)
		assert.Equal(t, 0.00103, dims.CBM())
	})

	t.Run("should be commutative in the three dimensions", func(t *testing.T) {
		permutations := [][3]float64{
			{100, 50, 40},
			{100, 40, 50},
			{50, 100, 40},
			{50, 40, 100},
			{40, 100, 50},
			{40, 50, 100},
		}

		for _, p := range permutations {
			t.Run(fmt.Sprintf("%vx%vx%v", p[0], p[1], p[2]), func(t *testing.T) {
				dims, err := pricing.NewDimensions(p[0], p[1], p[2], pricing.Centimeters)
				require.NoError(t, err)
				assert.Equal(t, 0.2, dims.CBM())
			})
		}
	})

	t.Run("should be zero when any dimension is zero", func(t *testing.T) {
		cases := [][3]float64{
			{0, 50, 40},
			{100, 0, 40},
			{100, 50, 0},
			{0, 0, 0},
		}

		for _, c := range cases {
			dims, err := pricing.NewDimensions(c[0], c[1], c[2], pricing.Centimeters)
			require.NoError(t, err)
			assert.Zero(t, dims.CBM())
		}
	})
}
