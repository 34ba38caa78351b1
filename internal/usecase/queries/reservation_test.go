//go:build unit

package queries_test

import (
	"context"
	"testing"

	"sejour/internal/infra"
	"sejour/internal/usecase/queries"
	"sejour/tests/common/builder"
	queriesmock "sejour/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ownerID int64 = 10

func newReservationQueries(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationViewRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockReservationViewRepo(ctrl)
	return queries.NewReservationQueries(repo), repo
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can read their reservation", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildView()
		repo.EXPECT().FindByID(ctx, int64(1)).Return(view, nil)

		actual, err := q.GetByID(ctx, ownerID, 1)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})

	t.Run("another user's reservation reads as not found", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildView()
		repo.EXPECT().FindByID(ctx, int64(1)).Return(view, nil)

		actual, err := q.GetByID(ctx, ownerID+1, 1)
		require.Nil(t, actual)
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("storage not-found maps to the sentinel", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		repo.EXPECT().FindByID(ctx, int64(999)).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, ownerID, 999)
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})

	t.Run("other storage errors pass through", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		dbErr := infra.WrapRepoErr("connection lost", assert.AnError)
		repo.EXPECT().FindByID(ctx, int64(1)).Return(nil, dbErr)

		_, err := q.GetByID(ctx, ownerID, 1)
		require.Error(t, err)
		require.NotErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_GetByIDSystem(t *testing.T) {
	ctx := context.Background()

	t.Run("skips the ownership check", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		view := builder.NewReservationBuilder().BuildView()
		repo.EXPECT().FindByID(ctx, int64(1)).Return(view, nil)

		actual, err := q.GetByIDSystem(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, view, actual)
	})
}

func TestReservationQueries_ListByUser(t *testing.T) {
	ctx := context.Background()

	items := []*queries.ReservationListItem{
		builder.NewReservationBuilder().BuildListItem(),
	}

	t.Run("forwards a positive limit", func(t *testing.T) {
		q, repo := newReservationQueries(t)
		repo.EXPECT().FindByUserID(ctx, ownerID, int32(5)).Return(items, nil)

		actual, err := q.ListByUser(ctx, ownerID, 5)
		require.NoError(t, err)
		assert.Len(t, actual, 1)
	})

	t.Run("zero and negative limits fall back to the default", func(t *testing.T) {
		for _, limit := range []int{0, -1} {
			q, repo := newReservationQueries(t)
			repo.EXPECT().FindByUserID(ctx, ownerID, int32(50)).Return(items, nil)

			_, err := q.ListByUser(ctx, ownerID, limit)
			require.NoError(t, err)
		}
	})
}
