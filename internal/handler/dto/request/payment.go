package request

import "strings"

type PayReservationRequest struct {
	ReservationID int64   `json:"reservation_id" binding:"required"`
	Mode          string  `json:"mode" binding:"required,oneof=cash terminal online"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Reference     *string `json:"reference,omitempty"`
}

func (r PayReservationRequest) GetReference() *string {
	if r.Reference == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reference)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type VerifyPaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=settled failed"`
}
