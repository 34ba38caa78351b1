//go:build unit || e2e

package builder

import (
	"time"

	"sejour/internal/domain/payment"
	reqdto "sejour/internal/handler/dto/request"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"
)

type PaymentBuilder struct {
	ID                  int64
	ReservationID       int64
	ReservationUserID   int64
	ReservationStatus   string
	ReservationStartsAt time.Time
	ReservationTotal    float64
	Mode                string
	Amount              float64
	Status              string
	Reference           string
	RefundAmount        *float64
	Now                 time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now()
	return &PaymentBuilder{
		ID:                  1,
		ReservationID:       30,
		ReservationUserID:   10,
		ReservationStatus:   "pending",
		ReservationStartsAt: now.AddDate(0, 0, 10),
		ReservationTotal:    300,
		Mode:                "online",
		Amount:              300,
		Status:              "settled",
		Reference:           "PAY-20260830-ABCDEF12",
		Now:                 now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	var ref *string
	if b.Reference != "" {
		ref = &b.Reference
	}
	return payment.NewPayment(b.ReservationID, payment.Mode(b.Mode), b.Amount, b.ReservationTotal, ref, b.Now)
}

func (b *PaymentBuilder) BuildPayRequestDTO() reqdto.PayReservationRequest {
	var ref *string
	if b.Reference != "" {
		ref = &b.Reference
	}
	return reqdto.PayReservationRequest{
		ReservationID: b.ReservationID,
		Mode:          b.Mode,
		Amount:        b.Amount,
		Reference:     ref,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	paidAt := b.Now
	return &queries.PaymentView{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		UserID:        b.ReservationUserID,
		Mode:          b.Mode,
		Amount:        b.Amount,
		PaidAt:        &paidAt,
		Status:        b.Status,
		Reference:     b.Reference,
		RefundAmount:  b.RefundAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *PaymentBuilder) BuildSnapshot() *shared.PaymentSnapshot {
	paidAt := b.Now
	return &shared.PaymentSnapshot{
		ID:                  b.ID,
		ReservationID:       b.ReservationID,
		ReservationUserID:   b.ReservationUserID,
		ReservationStatus:   b.ReservationStatus,
		ReservationStartsAt: b.ReservationStartsAt,
		Mode:                b.Mode,
		Amount:              b.Amount,
		Status:              b.Status,
		Reference:           b.Reference,
		PaidAt:              &paidAt,
		RefundAmount:        b.RefundAmount,
	}
}

// Fluent builder methods
func (b *PaymentBuilder) WithReservationID(id int64) *PaymentBuilder {
	b.ReservationID = id
	return b
}

func (b *PaymentBuilder) WithMode(mode string) *PaymentBuilder {
	b.Mode = mode
	return b
}

func (b *PaymentBuilder) WithAmount(amount float64) *PaymentBuilder {
	b.Amount = amount
	return b
}

func (b *PaymentBuilder) WithReservationTotal(total float64) *PaymentBuilder {
	b.ReservationTotal = total
	return b
}

func (b *PaymentBuilder) WithStatus(status string) *PaymentBuilder {
	b.Status = status
	return b
}

func (b *PaymentBuilder) WithReference(reference string) *PaymentBuilder {
	b.Reference = reference
	return b
}

func (b *PaymentBuilder) WithoutReference() *PaymentBuilder {
	b.Reference = ""
	return b
}
