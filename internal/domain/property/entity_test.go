//go:build unit

package property_test

import (
	"testing"

	"sejour/internal/domain/property"
	"sejour/tests/common/builder"

	"github.com/stretchr/testify/require"
)

func TestNewProperty(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)
	})

	testCases := []struct {
		name   string
		mutate func(*builder.PropertyBuilder)
		errIs  error
	}{
		{
			name:   "unknown type",
			mutate: func(b *builder.PropertyBuilder) { b.WithType("castle") },
			errIs:  property.ErrInvalidType,
		},
		{
			name:   "unknown status",
			mutate: func(b *builder.PropertyBuilder) { b.WithStatus("archived") },
			errIs:  property.ErrInvalidStatus,
		},
		{
			name:   "unknown tariff unit",
			mutate: func(b *builder.PropertyBuilder) { b.WithTariff(100, "week") },
			errIs:  property.ErrInvalidUnit,
		},
		{
			name:   "zero capacity",
			mutate: func(b *builder.PropertyBuilder) { b.WithCapacity(0) },
			errIs:  property.ErrInvalidCapacity,
		},
		{
			name:   "negative tariff",
			mutate: func(b *builder.PropertyBuilder) { b.WithTariff(-1, "day") },
			errIs:  property.ErrNegativeTariff,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewPropertyBuilder().With(tc.mutate).BuildDomain()
			require.Nil(t, actual)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestProperty_CheckBookable(t *testing.T) {
	t.Run("active property within capacity", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, prop.CheckBookable(4))
	})

	t.Run("inactive property", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().WithStatus("inactive").BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, prop.CheckBookable(2), property.ErrPropertyInactive)
	})

	t.Run("guest count above capacity", func(t *testing.T) {
		prop, err := builder.NewPropertyBuilder().WithCapacity(2).BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, prop.CheckBookable(3), property.ErrCapacityExceeded)
	})
}
