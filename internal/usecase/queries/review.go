package queries

import (
	"context"
	"time"

	"sejour/internal/infra"
	"sejour/internal/pkg/errs"
)

var ErrAgencyNotFound = errs.New("agency not found")

type ReviewListItem struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	ReviewDate time.Time `json:"review_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// AgencyReviewsView bundles an agency's reviews with its aggregate rating so
// the listing endpoint answers in one round trip.
type AgencyReviewsView struct {
	AgencyID      int64             `json:"agency_id"`
	AgencyName    string            `json:"agency_name"`
	AverageRating *float64          `json:"average_rating,omitempty"`
	ReviewCount   int64             `json:"review_count"`
	Reviews       []*ReviewListItem `json:"reviews"`
}

type AgencyView struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Contact *string  `json:"contact,omitempty"`
	Ranking *float64 `json:"ranking,omitempty"`
}

type ReviewQueries interface {
	ListByAgency(ctx context.Context, agencyID int64, limit int) (*AgencyReviewsView, error)
}

type ReviewViewRepo interface {
	FindByAgencyID(ctx context.Context, agencyID int64, limit int32) ([]*ReviewListItem, error)
	AgencyRating(ctx context.Context, agencyID int64) (avg *float64, count int64, err error)
}

type AgencyViewRepo interface {
	FindByID(ctx context.Context, id int64) (*AgencyView, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewViewRepo
	agencies AgencyViewRepo
}

func NewReviewQueries(reviews ReviewViewRepo, agencies AgencyViewRepo) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, agencies: agencies}
}

func (q *reviewQueriesImpl) ListByAgency(ctx context.Context, agencyID int64, limit int) (*AgencyReviewsView, error) {
	agency, err := q.agencies.FindByID(ctx, agencyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}

	items, err := q.reviews.FindByAgencyID(ctx, agencyID, int32(limit))
	if err != nil {
		return nil, err
	}

	avg, count, err := q.reviews.AgencyRating(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	return &AgencyReviewsView{
		AgencyID:      agency.ID,
		AgencyName:    agency.Name,
		AverageRating: avg,
		ReviewCount:   count,
		Reviews:       items,
	}, nil
}
