package shared

import (
	"context"
	"time"

	"sejour/internal/domain/agency"
	"sejour/internal/domain/payment"
	"sejour/internal/domain/reservation"
	"sejour/internal/domain/review"
	"sejour/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id int64) (*PropertySnapshot, error)
	AgencyByID(ctx context.Context, id int64) (*agency.Agency, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
	PaymentByID(ctx context.Context, id int64) (*PaymentSnapshot, error)
	PaymentByReservationID(ctx context.Context, reservationID int64) (*PaymentSnapshot, error)
	PaymentByReference(ctx context.Context, reference string) (*PaymentSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status reservation.Status) error
	HasOverlapping(ctx context.Context, tx db.DBTX, propertyID int64, stay reservation.Stay) (bool, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, pay *payment.Payment) (int64, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status payment.Status, paidAt time.Time) error
	MarkRefunded(ctx context.Context, tx db.DBTX, id int64, refundAmount float64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (int64, error)
}
