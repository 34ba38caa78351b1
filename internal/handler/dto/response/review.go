package response

import (
	"time"

	"sejour/internal/usecase/queries"
)

type SubmitReviewResponse struct {
	ReviewID int64 `json:"reviewId"`
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	ReviewDate time.Time `json:"reviewDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AgencyReviewsResponse struct {
	AgencyID      int64             `json:"agencyId"`
	AgencyName    string            `json:"agencyName"`
	AverageRating *float64          `json:"averageRating,omitempty"`
	ReviewCount   int64             `json:"reviewCount"`
	Reviews       []*ReviewResponse `json:"reviews"`
}

func FromAgencyReviewsView(rm *queries.AgencyReviewsView) *AgencyReviewsResponse {
	reviews := make([]*ReviewResponse, len(rm.Reviews))
	for i, item := range rm.Reviews {
		reviews[i] = &ReviewResponse{
			ID:         item.ID,
			UserID:     item.UserID,
			Rating:     item.Rating,
			Comment:    item.Comment,
			ReviewDate: item.ReviewDate,
			CreatedAt:  item.CreatedAt,
		}
	}
	return &AgencyReviewsResponse{
		AgencyID:      rm.AgencyID,
		AgencyName:    rm.AgencyName,
		AverageRating: rm.AverageRating,
		ReviewCount:   rm.ReviewCount,
		Reviews:       reviews,
	}
}
