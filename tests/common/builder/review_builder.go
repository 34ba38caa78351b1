//go:build unit || e2e

package builder

import (
	"time"

	domreview "sejour/internal/domain/review"
	reqdto "sejour/internal/handler/dto/request"
	"sejour/internal/usecase/queries"
)

type ReviewBuilder struct {
	ID        int64
	UserID    int64
	AgencyID  int64
	Rating    int
	Comment   string
	Now       time.Time
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:        1,
		UserID:    10,
		AgencyID:  40,
		Rating:    5,
		Comment:   "Excellent service!",
		Now:       now,
		CreatedAt: now,
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.UserID, b.AgencyID, b.Rating, b.Comment, b.Now)
}

func (b *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		AgencyID: b.AgencyID,
		Rating:   b.Rating,
		Comment:  b.Comment,
	}
}

func (b *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	comment := b.Comment
	return &queries.ReviewListItem{
		ID:         b.ID,
		UserID:     b.UserID,
		Rating:     b.Rating,
		Comment:    &comment,
		ReviewDate: b.Now.Truncate(24 * time.Hour),
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ReviewBuilder) WithUserID(userID int64) *ReviewBuilder {
	b.UserID = userID
	return b
}

func (b *ReviewBuilder) WithAgencyID(agencyID int64) *ReviewBuilder {
	b.AgencyID = agencyID
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}
