package readstore

import (
	"context"

	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
	"sejour/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const findReservationByIDSQL = `
SELECT r.id, r.property_id, p.title, r.user_id, r.starts_at, r.ends_at,
       r.guest_count, r.status, r.total_amount, p.currency, r.created_at, r.updated_at
FROM reservations r
JOIN properties p ON p.id = r.property_id
WHERE r.id = $1`

const findReservationsByUserIDSQL = `
SELECT r.id, r.property_id, p.title, r.starts_at, r.ends_at, r.status, r.total_amount, r.created_at
FROM reservations r
JOIN properties p ON p.id = r.property_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	var (
		view        queries.ReservationView
		totalAmount pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findReservationByIDSQL, id).Scan(
		&view.ID, &view.PropertyID, &view.PropertyTitle, &view.UserID,
		&view.StartsAt, &view.EndsAt, &view.GuestCount, &view.Status,
		&totalAmount, &view.Currency, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	if view.TotalAmount, err = pgconv.Float64FromNumeric(totalAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid total amount", err)
	}

	return &view, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID int64, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, findReservationsByUserIDSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			item        queries.ReservationListItem
			totalAmount pgtype.Numeric
		)
		if err = rows.Scan(
			&item.ID, &item.PropertyID, &item.PropertyTitle,
			&item.StartsAt, &item.EndsAt, &item.Status, &totalAmount, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		if item.TotalAmount, err = pgconv.Float64FromNumeric(totalAmount); err != nil {
			return nil, infra.WrapRepoErr("invalid total amount", err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}
