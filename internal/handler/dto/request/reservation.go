package request

import (
	"time"
)

type CreateReservationRequest struct {
	PropertyID int64     `json:"property_id" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	GuestCount int       `json:"guest_count" binding:"required,min=1"`
}
