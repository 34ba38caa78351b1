package readstore

import (
	"context"

	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
	"sejour/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findReviewsByAgencyIDSQL = `
SELECT id, user_id, rating, comment, review_date, created_at
FROM reviews
WHERE agency_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

const agencyRatingSQL = `
SELECT AVG(rating), COUNT(*)
FROM reviews
WHERE agency_id = $1`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByAgencyID(ctx context.Context, agencyID int64, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, findReviewsByAgencyIDSQL, agencyID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by agency", err)
	}
	defer rows.Close()

	result := make([]*queries.ReviewListItem, 0)
	for rows.Next() {
		var (
			item       queries.ReviewListItem
			comment    pgtype.Text
			reviewDate pgtype.Date
		)
		if err = rows.Scan(&item.ID, &item.UserID, &item.Rating, &comment, &reviewDate, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		item.Comment = pgconv.StringPtrFromPgtype(comment)
		item.ReviewDate = pgconv.DateFromPgtype(reviewDate)
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}

	return result, nil
}

func (r *ReviewReadStore) AgencyRating(ctx context.Context, agencyID int64) (*float64, int64, error) {
	var (
		avg   pgtype.Numeric
		count int64
	)
	if err := r.db.QueryRow(ctx, agencyRatingSQL, agencyID).Scan(&avg, &count); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to compute agency rating", err)
	}

	average, err := pgconv.Float64PtrFromNumeric(avg)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("invalid average rating", err)
	}

	return average, count, nil
}
