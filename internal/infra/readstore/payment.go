package readstore

import (
	"context"

	"sejour/internal/infra"
	"sejour/internal/infra/db"
	"sejour/internal/pkg/pgconv"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentViewColumnsSQL = `
SELECT p.id, p.reservation_id, r.user_id, p.mode, p.amount, p.paid_at,
       p.status, p.reference, p.refund_amount, p.created_at, p.updated_at
FROM payments p
JOIN reservations r ON r.id = p.reservation_id`

const findPaymentByIDSQL = paymentViewColumnsSQL + `
WHERE p.id = $1`

const findPaymentByReservationIDSQL = paymentViewColumnsSQL + `
WHERE p.reservation_id = $1`

const findPaymentsByUserIDSQL = paymentViewColumnsSQL + `
WHERE r.user_id = $1
ORDER BY p.created_at DESC, p.id DESC
LIMIT $2`

// Snapshot rows carry the owning reservation's state so command handlers can
// validate refund and verification preconditions in one read.
const paymentSnapshotColumnsSQL = `
SELECT p.id, p.reservation_id, r.user_id, r.status, r.starts_at,
       p.mode, p.amount, p.status, p.paid_at, p.reference, p.refund_amount
FROM payments p
JOIN reservations r ON r.id = p.reservation_id`

const findPaymentSnapshotByIDSQL = paymentSnapshotColumnsSQL + `
WHERE p.id = $1`

const findPaymentSnapshotByReservationIDSQL = paymentSnapshotColumnsSQL + `
WHERE p.reservation_id = $1`

const findPaymentSnapshotByReferenceSQL = paymentSnapshotColumnsSQL + `
WHERE p.reference = $1`

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: db}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id int64) (*queries.PaymentView, error) {
	return r.findOneView(ctx, findPaymentByIDSQL, id)
}

func (r *PaymentReadStore) FindByReservationID(ctx context.Context, reservationID int64) (*queries.PaymentView, error) {
	return r.findOneView(ctx, findPaymentByReservationIDSQL, reservationID)
}

func (r *PaymentReadStore) FindByUserID(ctx context.Context, userID int64, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.db.Query(ctx, findPaymentsByUserIDSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payments by user", err)
	}
	defer rows.Close()

	result := make([]*queries.PaymentView, 0)
	for rows.Next() {
		view, scanErr := scanPaymentView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, view)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}

	return result, nil
}

func (r *PaymentReadStore) SnapshotByID(ctx context.Context, id int64) (*shared.PaymentSnapshot, error) {
	return r.findOneSnapshot(ctx, findPaymentSnapshotByIDSQL, id)
}

func (r *PaymentReadStore) SnapshotByReservationID(ctx context.Context, reservationID int64) (*shared.PaymentSnapshot, error) {
	return r.findOneSnapshot(ctx, findPaymentSnapshotByReservationIDSQL, reservationID)
}

func (r *PaymentReadStore) SnapshotByReference(ctx context.Context, reference string) (*shared.PaymentSnapshot, error) {
	return r.findOneSnapshot(ctx, findPaymentSnapshotByReferenceSQL, reference)
}

func (r *PaymentReadStore) findOneView(ctx context.Context, sql string, arg any) (*queries.PaymentView, error) {
	view, err := scanPaymentView(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPaymentView(row rowScanner) (*queries.PaymentView, error) {
	var (
		view         queries.PaymentView
		amount       pgtype.Numeric
		paidAt       pgtype.Timestamptz
		refundAmount pgtype.Numeric
	)
	err := row.Scan(
		&view.ID, &view.ReservationID, &view.UserID, &view.Mode, &amount,
		&paidAt, &view.Status, &view.Reference, &refundAmount,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan payment row", err)
	}

	if view.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("invalid payment amount", err)
	}
	if view.RefundAmount, err = pgconv.Float64PtrFromNumeric(refundAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid refund amount", err)
	}
	view.PaidAt = pgconv.TimePtrFromPgtype(paidAt)

	return &view, nil
}

func (r *PaymentReadStore) findOneSnapshot(ctx context.Context, sql string, arg any) (*shared.PaymentSnapshot, error) {
	var (
		snap         shared.PaymentSnapshot
		amount       pgtype.Numeric
		paidAt       pgtype.Timestamptz
		refundAmount pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(
		&snap.ID, &snap.ReservationID, &snap.ReservationUserID,
		&snap.ReservationStatus, &snap.ReservationStartsAt,
		&snap.Mode, &amount, &snap.Status, &paidAt, &snap.Reference, &refundAmount,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	if snap.Amount, err = pgconv.Float64FromNumeric(amount); err != nil {
		return nil, infra.WrapRepoErr("invalid payment amount", err)
	}
	if snap.RefundAmount, err = pgconv.Float64PtrFromNumeric(refundAmount); err != nil {
		return nil, infra.WrapRepoErr("invalid refund amount", err)
	}
	snap.PaidAt = pgconv.TimePtrFromPgtype(paidAt)

	return &snap, nil
}
