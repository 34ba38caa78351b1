package payment

import (
	"errors"
	"math"
	"strings"
	"time"

	"sejour/internal/domain/reservation"
)

// AmountTolerance is the maximum accepted difference between a submitted
// amount and the reservation total. Amounts are stored as decimal(12,2), so
// anything beyond a cent is a caller error.
const AmountTolerance = 0.01

var (
	ErrInvalidMode         = errors.New("invalid payment mode")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrAmountMismatch      = errors.New("amount does not match reservation total")
	ErrNotRefundable       = errors.New("payment is not in a refundable state")
	ErrInvalidVerifyStatus = errors.New("verification status must be settled or failed")
)

type Payment struct {
	id            int64
	reservationID int64
	mode          Mode
	amount        float64
	paidAt        time.Time
	status        Status
	reference     string
	refundAmount  *float64
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment records a settled payment for a reservation. Every mode settles
// synchronously; there is no pending gateway state in the live path. The
// reference is generated when the caller does not supply one.
func NewPayment(reservationID int64, mode Mode, amount, reservationTotal float64, reference *string, now time.Time) (*Payment, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if !AmountMatches(amount, reservationTotal) {
		return nil, ErrAmountMismatch
	}

	ref := ""
	if reference != nil {
		ref = strings.TrimSpace(*reference)
	}
	if ref == "" {
		ref = GenerateReference(now)
	}

	return &Payment{
		reservationID: reservationID,
		mode:          mode,
		amount:        amount,
		paidAt:        now,
		status:        StatusSettled,
		reference:     ref,
	}, nil
}

func Reconstruct(
	id, reservationID int64,
	mode Mode,
	amount float64,
	paidAt time.Time,
	status Status,
	reference string,
	refundAmount *float64,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		reservationID: reservationID,
		mode:          mode,
		amount:        amount,
		paidAt:        paidAt,
		status:        status,
		reference:     reference,
		refundAmount:  refundAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// AmountMatches reports whether a submitted amount equals the reservation
// total within AmountTolerance. A difference of exactly 0.01 is accepted.
// The difference is rounded to cents first so float noise on two-decimal
// inputs cannot push an exact-cent difference over the tolerance.
func AmountMatches(amount, total float64) bool {
	return reservation.Round2(math.Abs(amount-total)) <= AmountTolerance
}

// ApplyVerification handles a webhook-style status update. Only settled and
// failed are legal; paid-at is refreshed either way. A failed verification
// leaves the owning reservation untouched.
func (p *Payment) ApplyVerification(status Status, now time.Time) error {
	if status != StatusSettled && status != StatusFailed {
		return ErrInvalidVerifyStatus
	}
	p.status = status
	p.paidAt = now
	return nil
}

// Refund computes the tiered refund for a cancelled reservation and marks
// the payment refunded. Tiers by days between now and check-in:
// more than 7 days 100%, 3-7 days 50%, under 3 days 25%.
func (p *Payment) Refund(now, checkIn time.Time) (float64, error) {
	if p.status != StatusSettled {
		return 0, ErrNotRefundable
	}

	amount := TieredRefund(p.amount, now, checkIn)
	p.status = StatusRefunded
	p.refundAmount = &amount
	return amount, nil
}

func TieredRefund(original float64, now, checkIn time.Time) float64 {
	days := int(checkIn.Sub(now).Hours() / 24)

	switch {
	case days > 7:
		return reservation.Round2(original)
	case days >= 3:
		return reservation.Round2(original * 0.5)
	default:
		return reservation.Round2(original * 0.25)
	}
}

func (p *Payment) IsSettled() bool {
	return p.status == StatusSettled
}

func (p *Payment) ID() int64              { return p.id }
func (p *Payment) ReservationID() int64   { return p.reservationID }
func (p *Payment) Mode() Mode             { return p.mode }
func (p *Payment) Amount() float64        { return p.amount }
func (p *Payment) PaidAt() time.Time      { return p.paidAt }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) Reference() string      { return p.reference }
func (p *Payment) RefundAmount() *float64 { return p.refundAmount }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time   { return p.updatedAt }
