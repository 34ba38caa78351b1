package commands

import (
	"context"
	"errors"
	"time"

	"sejour/internal/domain/payment"
	"sejour/internal/domain/reservation"
	"sejour/internal/infra"
	"sejour/internal/pkg/clock"
	"sejour/internal/pkg/errs"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"
)

var (
	ErrPaymentNotFound         = errs.New("payment not found")
	ErrDuplicatePayment        = errs.New("reservation already paid")
	ErrAmountMismatch          = errs.New("amount does not match reservation total")
	ErrInvalidPaymentMode      = errs.New("invalid payment mode")
	ErrReservationNotPayable   = errs.New("cancelled reservation cannot be paid")
	ErrInvalidVerifyStatus     = errs.New("invalid verification status")
	ErrReservationNotCancelled = errs.New("reservation must be cancelled before refund")
	ErrNotRefundable           = errs.New("payment not refundable")
)

type PayReservationCommand struct {
	ReservationID int64
	Mode          string
	Amount        float64
	Reference     *string
}

type RefundResult struct {
	PaymentID      int64
	Reference      string
	OriginalAmount float64
	RefundAmount   float64
}

type PaymentCommands interface {
	PayReservation(ctx context.Context, cmd PayReservationCommand, userID int64) (*queries.PaymentView, error)
	VerifyPayment(ctx context.Context, reference, status string) (*queries.PaymentView, error)
	RefundPayment(ctx context.Context, paymentID, userID int64) (*RefundResult, error)
}

type paymentUseCaseImpl struct {
	uow            shared.UnitOfWork
	paymentQueries queries.PaymentQueries
	clock          clock.Clock
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	paymentQueries queries.PaymentQueries,
	clk clock.Clock,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:            uow,
		paymentQueries: paymentQueries,
		clock:          clk,
	}
}

func (uc *paymentUseCaseImpl) PayReservation(
	ctx context.Context,
	cmd PayReservationCommand,
	userID int64,
) (*queries.PaymentView, error) {
	var paymentID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resSnap, derr := tx.Reads().ReservationByID(ctx, cmd.ReservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if resSnap.UserID != userID {
			return ErrReservationNotFound
		}
		if resSnap.Status == reservation.StatusCancelled.String() {
			return ErrReservationNotPayable
		}

		// Advisory duplicate check; the unique constraint on reservation_id
		// decides under concurrent attempts.
		if _, derr = tx.Reads().PaymentByReservationID(ctx, resSnap.ID); derr == nil {
			return ErrDuplicatePayment
		} else if !infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		pay, derr := payment.NewPayment(resSnap.ID, payment.Mode(cmd.Mode), cmd.Amount, resSnap.TotalAmount, cmd.Reference, uc.clock.Now())
		if derr != nil {
			switch {
			case errors.Is(derr, payment.ErrAmountMismatch):
				return ErrAmountMismatch
			case errors.Is(derr, payment.ErrInvalidMode):
				return ErrInvalidPaymentMode
			}
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Payments().Create(ctx, tx.DB(), pay)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDuplicatePayment
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrReservationNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		paymentID = id

		// Settled payment confirms the pending reservation in the same tx
		if resSnap.Status == reservation.StatusPending.String() {
			if derr = tx.Reservations().UpdateStatus(ctx, tx.DB(), resSnap.ID, reservation.StatusConfirmed); derr != nil {
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.paymentQueries.GetByIDSystem(ctx, paymentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *paymentUseCaseImpl) VerifyPayment(ctx context.Context, reference, status string) (*queries.PaymentView, error) {
	var paymentID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PaymentByReference(ctx, reference)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		agg := reconstructPayment(snap)
		if derr = agg.ApplyVerification(payment.Status(status), uc.clock.Now()); derr != nil {
			return ErrInvalidVerifyStatus
		}

		if derr = tx.Payments().UpdateStatus(ctx, tx.DB(), snap.ID, agg.Status(), agg.PaidAt()); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// A settled verification confirms the reservation; a failed one
		// leaves it untouched.
		if agg.IsSettled() && snap.ReservationStatus == reservation.StatusPending.String() {
			if derr = tx.Reservations().UpdateStatus(ctx, tx.DB(), snap.ReservationID, reservation.StatusConfirmed); derr != nil {
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}
		paymentID = snap.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.paymentQueries.GetByIDSystem(ctx, paymentID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *paymentUseCaseImpl) RefundPayment(ctx context.Context, paymentID, userID int64) (*RefundResult, error) {
	var result *RefundResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PaymentByID(ctx, paymentID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPaymentNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.ReservationUserID != userID {
			return ErrPaymentNotFound
		}
		if snap.ReservationStatus != reservation.StatusCancelled.String() {
			return ErrReservationNotCancelled
		}

		agg := reconstructPayment(snap)
		amount, derr := agg.Refund(uc.clock.Now(), snap.ReservationStartsAt)
		if derr != nil {
			return ErrNotRefundable
		}

		if derr = tx.Payments().MarkRefunded(ctx, tx.DB(), snap.ID, amount); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		result = &RefundResult{
			PaymentID:      snap.ID,
			Reference:      snap.Reference,
			OriginalAmount: snap.Amount,
			RefundAmount:   amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func reconstructPayment(snap *shared.PaymentSnapshot) *payment.Payment {
	var paidAt time.Time
	if snap.PaidAt != nil {
		paidAt = *snap.PaidAt
	}
	return payment.Reconstruct(
		snap.ID, snap.ReservationID,
		payment.Mode(snap.Mode),
		snap.Amount,
		paidAt,
		payment.Status(snap.Status),
		snap.Reference,
		snap.RefundAmount,
		time.Time{}, time.Time{},
	)
}
