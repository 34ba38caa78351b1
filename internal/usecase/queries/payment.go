package queries

import (
	"context"
	"time"

	"sejour/internal/infra"
	"sejour/internal/pkg/errs"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentView struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservation_id"`
	UserID        int64      `json:"user_id"`
	Mode          string     `json:"mode"`
	Amount        float64    `json:"amount"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Status        string     `json:"status"`
	Reference     string     `json:"reference"`
	RefundAmount  *float64   `json:"refund_amount,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PaymentQueries interface {
	GetByID(ctx context.Context, actorID, id int64) (*PaymentView, error)
	GetByIDSystem(ctx context.Context, id int64) (*PaymentView, error)
	GetByReservationID(ctx context.Context, actorID, reservationID int64) (*PaymentView, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]*PaymentView, error)
}

type PaymentViewRepo interface {
	FindByID(ctx context.Context, id int64) (*PaymentView, error)
	FindByReservationID(ctx context.Context, reservationID int64) (*PaymentView, error)
	FindByUserID(ctx context.Context, userID int64, limit int32) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, actorID, id int64) (*PaymentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if view.UserID != actorID {
		return nil, ErrPaymentNotFound
	}

	return view, nil
}

func (q *paymentQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*PaymentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentQueriesImpl) GetByReservationID(ctx context.Context, actorID, reservationID int64) (*PaymentView, error) {
	view, err := q.repo.FindByReservationID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if view.UserID != actorID {
		return nil, ErrPaymentNotFound
	}

	return view, nil
}

func (q *paymentQueriesImpl) ListByUser(ctx context.Context, userID int64, limit int) ([]*PaymentView, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}
