package shared

import "time"

// Snapshots are minimal read models used by command handlers to validate
// preconditions inside a transaction. They are plain data, not aggregates.

type PropertySnapshot struct {
	ID           int64
	AgencyID     int64
	Title        string
	Type         string
	Capacity     int
	Status       string
	TariffAmount float64
	TariffUnit   string
	Currency     string
}

type ReservationSnapshot struct {
	ID          int64
	UserID      int64
	PropertyID  int64
	StartsAt    time.Time
	EndsAt      time.Time
	GuestCount  int
	Status      string
	TotalAmount float64
}

type PaymentSnapshot struct {
	ID                  int64
	ReservationID       int64
	ReservationUserID   int64
	ReservationStatus   string
	ReservationStartsAt time.Time
	Mode                string
	Amount              float64
	Status              string
	Reference           string
	PaidAt              *time.Time
	RefundAmount        *float64
}
