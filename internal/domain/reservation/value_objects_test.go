//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sejour/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewStay(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		stay, err := reservation.NewStay(base.AddDate(0, 0, 1), base.AddDate(0, 0, 4), base)
		require.NoError(t, err)
		assert.Equal(t, 3, stay.Days())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := reservation.NewStay(base.AddDate(0, 0, 4), base.AddDate(0, 0, 1), base)
		require.ErrorIs(t, err, reservation.ErrInvalidStay)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, err := reservation.NewStay(base.AddDate(0, 0, 1), base.AddDate(0, 0, 1), base)
		require.ErrorIs(t, err, reservation.ErrInvalidStay)
	})

	t.Run("start on a past calendar day", func(t *testing.T) {
		_, err := reservation.NewStay(base.AddDate(0, 0, -1), base.AddDate(0, 0, 4), base)
		require.ErrorIs(t, err, reservation.ErrStartInPast)
	})

	t.Run("start earlier today is allowed", func(t *testing.T) {
		// Same calendar day counts as today even if the instant has passed
		_, err := reservation.NewStay(base.Add(-2*time.Hour), base.AddDate(0, 0, 2), base)
		require.NoError(t, err)
	})
}

func TestStay_Days(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "three calendar days",
			start:    base.AddDate(0, 0, 1),
			end:      base.AddDate(0, 0, 4),
			expected: 3,
		},
		{
			name:     "same-day stay yields zero days",
			start:    base.Add(time.Hour),
			end:      base.Add(5 * time.Hour),
			expected: 0,
		},
		{
			name:     "overnight stay crossing midnight",
			start:    time.Date(2026, 5, 2, 22, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC),
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := reservation.NewStay(tc.start, tc.end, base)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stay.Days())
		})
	}
}

func TestStay_Overlaps(t *testing.T) {
	stay := reservation.ReconstructStay(base.AddDate(0, 0, 1), base.AddDate(0, 0, 4))

	testCases := []struct {
		name     string
		other    reservation.Stay
		overlaps bool
	}{
		{
			name:     "fully inside",
			other:    reservation.ReconstructStay(base.AddDate(0, 0, 2), base.AddDate(0, 0, 3)),
			overlaps: true,
		},
		{
			name:     "fully before",
			other:    reservation.ReconstructStay(base.AddDate(0, 0, -5), base.AddDate(0, 0, -2)),
			overlaps: false,
		},
		{
			name:     "fully after",
			other:    reservation.ReconstructStay(base.AddDate(0, 0, 5), base.AddDate(0, 0, 8)),
			overlaps: false,
		},
		{
			name: "shared end boundary conflicts",
			// Inclusive boundaries: checking in at the exact checkout instant is a conflict
			other:    reservation.ReconstructStay(base.AddDate(0, 0, 4), base.AddDate(0, 0, 7)),
			overlaps: true,
		},
		{
			name:     "shared start boundary conflicts",
			other:    reservation.ReconstructStay(base.AddDate(0, 0, -2), base.AddDate(0, 0, 1)),
			overlaps: true,
		},
		{
			name:     "one second after checkout is free",
			other:    reservation.ReconstructStay(base.AddDate(0, 0, 4).Add(time.Second), base.AddDate(0, 0, 7)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, stay.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(stay), "overlap must be symmetric")
		})
	}
}
