package repository

import (
	"context"

	"sejour/internal/domain/review"
	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
)

const createReviewSQL = `
INSERT INTO reviews (user_id, agency_id, rating, comment, review_date)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (int64, error) {
	var comment *string
	if !rev.Comment().IsEmpty() {
		text := rev.Comment().String()
		comment = &text
	}

	var id int64
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.UserID(),
		rev.AgencyID(),
		rev.Rating().Value(),
		pgconv.StringPtrToPgtype(comment),
		pgconv.DateToPgtype(rev.ReviewDate()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}

	return id, nil
}
