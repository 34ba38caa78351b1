package review

import (
	"time"
)

// Review rates an agency. A user may leave at most one review per agency per
// calendar day; the uniqueness key is (user, agency, review date) and the
// store's unique constraint is authoritative.
type Review struct {
	id         int64
	userID     int64
	agencyID   int64
	rating     Rating
	comment    Comment
	reviewDate time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(userID, agencyID int64, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		userID:     userID,
		agencyID:   agencyID,
		rating:     rating,
		comment:    comment,
		reviewDate: truncateToDate(now),
	}, nil
}

func Reconstruct(
	id, userID, agencyID int64,
	rating Rating,
	comment Comment,
	reviewDate time.Time,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:         id,
		userID:     userID,
		agencyID:   agencyID,
		rating:     rating,
		comment:    comment,
		reviewDate: reviewDate,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Review) ID() int64             { return r.id }
func (r *Review) UserID() int64         { return r.userID }
func (r *Review) AgencyID() int64       { return r.agencyID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) ReviewDate() time.Time { return r.reviewDate }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
