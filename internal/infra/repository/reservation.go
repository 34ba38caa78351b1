package repository

import (
	"context"

	"sejour/internal/domain/reservation"
	"sejour/internal/infra"
	"sejour/internal/infra/db"
)

const createReservationSQL = `
INSERT INTO reservations (user_id, property_id, starts_at, ends_at, guest_count, status, total_amount)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

// Inclusive bounds on both ends: a stay ending exactly when another begins
// still counts as overlapping.
const hasOverlappingReservationSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations
	WHERE property_id = $1
	  AND status <> 'cancelled'
	  AND starts_at <= $3
	  AND ends_at >= $2
)`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createReservationSQL,
		res.UserID(),
		res.PropertyID(),
		res.Stay().Start(),
		res.Stay().End(),
		res.GuestCount(),
		res.Status().String(),
		res.TotalAmount(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) HasOverlapping(ctx context.Context, tx db.DBTX, propertyID int64, stay reservation.Stay) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasOverlappingReservationSQL, propertyID, stay.Start(), stay.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}
