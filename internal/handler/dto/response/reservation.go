package response

import (
	"time"

	"sejour/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	UserID        int64     `json:"userId"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	GuestCount    int       `json:"guestCount"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"totalAmount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"propertyId"`
	PropertyTitle string    `json:"propertyTitle"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		PropertyID:    rm.PropertyID,
		PropertyTitle: rm.PropertyTitle,
		UserID:        rm.UserID,
		StartsAt:      rm.StartsAt,
		EndsAt:        rm.EndsAt,
		GuestCount:    rm.GuestCount,
		Status:        rm.Status,
		TotalAmount:   rm.TotalAmount,
		Currency:      rm.Currency,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:            rm.ID,
		PropertyID:    rm.PropertyID,
		PropertyTitle: rm.PropertyTitle,
		StartsAt:      rm.StartsAt,
		EndsAt:        rm.EndsAt,
		Status:        rm.Status,
		TotalAmount:   rm.TotalAmount,
		CreatedAt:     rm.CreatedAt,
	}
}
