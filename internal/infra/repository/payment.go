package repository

import (
	"context"
	"time"

	"sejour/internal/domain/payment"
	"sejour/internal/infra"
	"sejour/internal/infra/db"
)

const createPaymentSQL = `
INSERT INTO payments (reservation_id, mode, amount, paid_at, status, reference)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const updatePaymentStatusSQL = `
UPDATE payments
SET status = $2, paid_at = $3, updated_at = now()
WHERE id = $1`

const markPaymentRefundedSQL = `
UPDATE payments
SET status = 'refunded', refund_amount = $2, updated_at = now()
WHERE id = $1`

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, pay *payment.Payment) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createPaymentSQL,
		pay.ReservationID(),
		pay.Mode().String(),
		pay.Amount(),
		pay.PaidAt(),
		pay.Status().String(),
		pay.Reference(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create payment", err)
	}

	return id, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id int64, status payment.Status, paidAt time.Time) error {
	tag, err := tx.Exec(ctx, updatePaymentStatusSQL, id, status.String(), paidAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, tx db.DBTX, id int64, refundAmount float64) error {
	tag, err := tx.Exec(ctx, markPaymentRefundedSQL, id, refundAmount)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment refunded", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
