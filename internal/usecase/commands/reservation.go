package commands

import (
	"context"
	"errors"
	"time"

	"sejour/internal/domain/property"
	"sejour/internal/domain/reservation"
	"sejour/internal/infra"
	"sejour/internal/pkg/clock"
	"sejour/internal/pkg/config"
	"sejour/internal/pkg/errs"
	"sejour/internal/usecase/queries"
	"sejour/internal/usecase/shared"
)

var (
	ErrPropertyNotFound            = errs.New("property not found")
	ErrPropertyNotBookable         = errs.New("property not bookable")
	ErrInvalidStayPeriod           = errs.New("invalid stay period")
	ErrDateConflict                = errs.New("reservation dates conflict")
	ErrReservationNotFound         = errs.New("reservation not found")
	ErrReservationAlreadyCancelled = errs.New("reservation already cancelled")
	ErrCancellationTooLate         = errs.New("too late to cancel")
	ErrDomainValidation            = errs.New("domain validation error")
	ErrDatabaseOperationFailed     = errs.New("database operation failed")
)

type CreateReservationCommand struct {
	PropertyID int64
	StartsAt   time.Time
	EndsAt     time.Time
	GuestCount int
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand, userID int64) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, reservationID, userID int64) error
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	pricing            reservation.PriceCalculator
	clock              clock.Clock
	booking            config.BookingConfig
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	pricing reservation.PriceCalculator,
	clk clock.Clock,
	booking config.BookingConfig,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		pricing:            pricing,
		clock:              clk,
		booking:            booking,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(
	ctx context.Context,
	cmd CreateReservationCommand,
	userID int64,
) (*queries.ReservationView, error) {
	stay, err := reservation.NewStay(cmd.StartsAt, cmd.EndsAt, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayPeriod)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, derr := uc.validateAndGetProperty(ctx, tx, cmd.PropertyID, cmd.GuestCount)
		if derr != nil {
			return derr
		}

		// Fast path only; the exclusion constraint is the authoritative
		// overlap check and closes the race under concurrent bookings.
		overlapping, derr := tx.Reservations().HasOverlapping(ctx, tx.DB(), cmd.PropertyID, stay)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if overlapping {
			return ErrDateConflict
		}

		quote := uc.pricing.Quote(prop.TariffAmount(), stay, cmd.GuestCount)

		res, derr := reservation.NewReservation(userID, cmd.PropertyID, stay, cmd.GuestCount, quote.Total)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDateConflict
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrPropertyNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store
	view, err := uc.reservationQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.UserID != userID {
			// Hide others' reservations rather than reveal they exist
			return ErrReservationNotFound
		}

		agg := reservation.Reconstruct(
			snap.ID, snap.UserID, snap.PropertyID,
			reservation.ReconstructStay(snap.StartsAt, snap.EndsAt),
			snap.GuestCount,
			reservation.Status(snap.Status),
			snap.TotalAmount,
			time.Time{}, time.Time{},
		)

		if derr = agg.Cancel(uc.clock.Now(), uc.booking.CancellationCutoff); derr != nil {
			switch {
			case errors.Is(derr, reservation.ErrAlreadyCancelled):
				return ErrReservationAlreadyCancelled
			case errors.Is(derr, reservation.ErrTooLateToCancel):
				return ErrCancellationTooLate
			}
			return errs.Mark(derr, ErrDomainValidation)
		}

		if derr = tx.Reservations().UpdateStatus(ctx, tx.DB(), snap.ID, reservation.StatusCancelled); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *reservationUseCaseImpl) validateAndGetProperty(
	ctx context.Context,
	tx shared.Tx,
	propertyID int64,
	guestCount int,
) (*property.Property, error) {
	snap, err := tx.Reads().PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	prop, err := property.NewProperty(
		snap.ID, snap.AgencyID, snap.Title,
		property.Type(snap.Type),
		snap.Capacity,
		property.Status(snap.Status),
		snap.TariffAmount,
		property.TariffUnit(snap.TariffUnit),
		snap.Currency,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err = prop.CheckBookable(guestCount); err != nil {
		return nil, errs.Mark(err, ErrPropertyNotBookable)
	}

	return prop, nil
}
