//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"sejour/internal/domain/reservation"
	"sejour/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, int64(10), actual.UserID())
		assert.Equal(t, int64(20), actual.PropertyID())
		assert.Equal(t, float64(300), actual.TotalAmount())
	})

	t.Run("zero guests rejected", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithGuestCount(0).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})

	t.Run("negative total rejected", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().WithTotalAmount(-1).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, reservation.ErrNegativeTotal)
	})
}

func TestReservation_Cancel(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cutoff := 24 * time.Hour

	testCases := []struct {
		name     string
		startsAt time.Time
		status   string
		errIs    error
	}{
		{
			name:     "pending reservation well before check-in",
			startsAt: now.Add(72 * time.Hour),
			status:   "pending",
		},
		{
			name:     "confirmed reservation is still cancellable",
			startsAt: now.Add(72 * time.Hour),
			status:   "confirmed",
		},
		{
			name:     "exactly at the cutoff",
			startsAt: now.Add(24 * time.Hour),
			status:   "pending",
		},
		{
			name:     "less than 24 hours before check-in",
			startsAt: now.Add(23 * time.Hour),
			status:   "pending",
			errIs:    reservation.ErrTooLateToCancel,
		},
		{
			name:     "check-in already passed",
			startsAt: now.Add(-time.Hour),
			status:   "confirmed",
			errIs:    reservation.ErrTooLateToCancel,
		},
		{
			name:     "already cancelled",
			startsAt: now.Add(72 * time.Hour),
			status:   "cancelled",
			errIs:    reservation.ErrAlreadyCancelled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().
				WithStay(tc.startsAt, tc.startsAt.AddDate(0, 0, 3)).
				WithStatus(tc.status).
				BuildReconstructed()

			err := res.Cancel(now, cutoff)
			if tc.errIs == nil {
				require.NoError(t, err)
				assert.True(t, res.IsCancelled())
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestReservation_Confirm(t *testing.T) {
	t.Run("pending becomes confirmed", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithStatus("pending").BuildReconstructed()
		require.NoError(t, res.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		res := builder.NewReservationBuilder().WithStatus("cancelled").BuildReconstructed()
		require.ErrorIs(t, res.Confirm(), reservation.ErrNotConfirmable)
	})
}
