package reservation

import (
	"errors"
	"time"
)

const CancellationCutoff = 24 * time.Hour

var (
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrNegativeTotal     = errors.New("total amount cannot be negative")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrTooLateToCancel   = errors.New("reservation starts in less than 24 hours")
	ErrNotConfirmable    = errors.New("cancelled reservation cannot be confirmed")
)

type Reservation struct {
	id          int64
	userID      int64
	propertyID  int64
	stay        Stay
	guestCount  int
	status      Status
	totalAmount float64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReservation creates a pending reservation with its total already
// computed. The id is assigned by the store at insert time.
func NewReservation(userID, propertyID int64, stay Stay, guestCount int, totalAmount float64) (*Reservation, error) {
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if totalAmount < 0 {
		return nil, ErrNegativeTotal
	}

	return &Reservation{
		userID:      userID,
		propertyID:  propertyID,
		stay:        stay,
		guestCount:  guestCount,
		status:      StatusPending,
		totalAmount: totalAmount,
	}, nil
}

func Reconstruct(
	id, userID, propertyID int64,
	stay Stay,
	guestCount int,
	status Status,
	totalAmount float64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		userID:      userID,
		propertyID:  propertyID,
		stay:        stay,
		guestCount:  guestCount,
		status:      status,
		totalAmount: totalAmount,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm marks the reservation confirmed after its payment settles.
func (r *Reservation) Confirm() error {
	if r.status == StatusCancelled {
		return ErrNotConfirmable
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel applies the cancellation cutoff regardless of current status: a
// confirmed reservation stays cancellable up to the cutoff before check-in.
// Any associated payment is untouched; refunds are a separate explicit call.
func (r *Reservation) Cancel(now time.Time, cutoff time.Duration) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.stay.Start().Sub(now) < cutoff {
		return ErrTooLateToCancel
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) UserID() int64        { return r.userID }
func (r *Reservation) PropertyID() int64    { return r.propertyID }
func (r *Reservation) Stay() Stay           { return r.stay }
func (r *Reservation) GuestCount() int      { return r.guestCount }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) TotalAmount() float64 { return r.totalAmount }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
