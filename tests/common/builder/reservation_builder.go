//go:build unit || e2e

package builder

import (
	"time"

	"sejour/internal/domain/reservation"
	reqdto "sejour/internal/handler/dto/request"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"
)

type ReservationBuilder struct {
	ID            int64
	UserID        int64
	PropertyID    int64
	PropertyTitle string
	StartsAt      time.Time
	EndsAt        time.Time
	GuestCount    int
	Status        string
	TotalAmount   float64
	Currency      string
	Now           time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:            1,
		UserID:        10,
		PropertyID:    20,
		PropertyTitle: "Seaside Villa",
		StartsAt:      now.AddDate(0, 0, 3),
		EndsAt:        now.AddDate(0, 0, 6),
		GuestCount:    2,
		Status:        "pending",
		TotalAmount:   300,
		Currency:      "EUR",
		Now:           now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildStay() (reservation.Stay, error) {
	return reservation.NewStay(b.StartsAt, b.EndsAt, b.Now)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.UserID, b.PropertyID, stay, b.GuestCount, b.TotalAmount)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID, b.UserID, b.PropertyID,
		reservation.ReconstructStay(b.StartsAt, b.EndsAt),
		b.GuestCount,
		reservation.Status(b.Status),
		b.TotalAmount,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PropertyID: b.PropertyID,
		StartsAt:   b.StartsAt,
		EndsAt:     b.EndsAt,
		GuestCount: b.GuestCount,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		PropertyTitle: b.PropertyTitle,
		UserID:        b.UserID,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		GuestCount:    b.GuestCount,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		Currency:      b.Currency,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		PropertyTitle: b.PropertyTitle,
		StartsAt:      b.StartsAt,
		EndsAt:        b.EndsAt,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		PropertyID:  b.PropertyID,
		StartsAt:    b.StartsAt,
		EndsAt:      b.EndsAt,
		GuestCount:  b.GuestCount,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithUserID(userID int64) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithPropertyID(propertyID int64) *ReservationBuilder {
	b.PropertyID = propertyID
	return b
}

func (b *ReservationBuilder) WithStay(startsAt, endsAt time.Time) *ReservationBuilder {
	b.StartsAt = startsAt
	b.EndsAt = endsAt
	return b
}

func (b *ReservationBuilder) WithGuestCount(count int) *ReservationBuilder {
	b.GuestCount = count
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTotalAmount(amount float64) *ReservationBuilder {
	b.TotalAmount = amount
	return b
}
