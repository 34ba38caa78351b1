package response

import (
	"time"

	"sejour/internal/usecase/commands"
	"sejour/internal/usecase/queries"
)

type PaymentResponse struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservationId"`
	Mode          string     `json:"mode"`
	Amount        float64    `json:"amount"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	Status        string     `json:"status"`
	Reference     string     `json:"reference"`
	RefundAmount  *float64   `json:"refundAmount,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type RefundResponse struct {
	PaymentID      int64   `json:"paymentId"`
	Reference      string  `json:"reference"`
	OriginalAmount float64 `json:"originalAmount"`
	RefundAmount   float64 `json:"refundAmount"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID,
		ReservationID: rm.ReservationID,
		Mode:          rm.Mode,
		Amount:        rm.Amount,
		PaidAt:        rm.PaidAt,
		Status:        rm.Status,
		Reference:     rm.Reference,
		RefundAmount:  rm.RefundAmount,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromRefundResult(res *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		PaymentID:      res.PaymentID,
		Reference:      res.Reference,
		OriginalAmount: res.OriginalAmount,
		RefundAmount:   res.RefundAmount,
	}
}
