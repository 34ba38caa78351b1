package queries

import (
	"context"
	"time"

	"sejour/internal/infra"
	"sejour/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

// Read models (DTO for read side)
type ReservationView struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	UserID        int64     `json:"user_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	GuestCount    int       `json:"guest_count"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID, id int64) (*ReservationView, error)
	// GetByIDSystem skips the ownership check; for read-after-write inside
	// command handlers only.
	GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID int64, limit int32) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

// Not-owned reservations are reported as not found rather than forbidden so
// callers cannot enumerate which ids exist.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID, id int64) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if view.UserID != actorID {
		return nil, ErrReservationNotFound
	}

	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID int64, limit int) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}
