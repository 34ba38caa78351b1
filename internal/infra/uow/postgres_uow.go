package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"sejour/internal/domain/agency"
	"sejour/internal/infra/db"
	"sejour/internal/infra/readstore"
	"sejour/internal/infra/repository"
	"sejour/internal/pkg/errs"
	"sejour/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	paymentRepo     shared.PaymentRepository
	reviewRepo      shared.ReviewRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	propertyStore    *readstore.PropertyReadStore
	agencyStore      *readstore.AgencyReadStore
	reservationStore *readstore.ReservationReadStore
	paymentStore     *readstore.PaymentReadStore
}

func (r *commandReads) PropertyByID(ctx context.Context, id int64) (*shared.PropertySnapshot, error) {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.dbtx)
	}

	view, err := r.propertyStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.PropertySnapshot{
		ID:           view.ID,
		AgencyID:     view.AgencyID,
		Title:        view.Title,
		Type:         view.Type,
		Capacity:     view.Capacity,
		Status:       view.Status,
		TariffAmount: view.TariffAmount,
		TariffUnit:   view.TariffUnit,
		Currency:     view.Currency,
	}, nil
}

func (r *commandReads) AgencyByID(ctx context.Context, id int64) (*agency.Agency, error) {
	if r.agencyStore == nil {
		r.agencyStore = readstore.NewAgencyReadStore(r.dbtx)
	}

	view, err := r.agencyStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return agency.Reconstruct(view.ID, view.Name, view.Contact, view.Ranking), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}

	view, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ReservationSnapshot{
		ID:          view.ID,
		UserID:      view.UserID,
		PropertyID:  view.PropertyID,
		StartsAt:    view.StartsAt,
		EndsAt:      view.EndsAt,
		GuestCount:  view.GuestCount,
		Status:      view.Status,
		TotalAmount: view.TotalAmount,
	}, nil
}

func (r *commandReads) PaymentByID(ctx context.Context, id int64) (*shared.PaymentSnapshot, error) {
	return r.payments().SnapshotByID(ctx, id)
}

func (r *commandReads) PaymentByReservationID(ctx context.Context, reservationID int64) (*shared.PaymentSnapshot, error) {
	return r.payments().SnapshotByReservationID(ctx, reservationID)
}

func (r *commandReads) PaymentByReference(ctx context.Context, reference string) (*shared.PaymentSnapshot, error) {
	return r.payments().SnapshotByReference(ctx, reference)
}

func (r *commandReads) payments() *readstore.PaymentReadStore {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}
	return r.paymentStore
}
