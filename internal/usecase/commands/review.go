package commands

import (
	"context"

	domreview "sejour/internal/domain/review"
	"sejour/internal/infra"
	"sejour/internal/pkg/clock"
	"sejour/internal/pkg/errs"
	"sejour/internal/usecase/shared"
)

var (
	ErrAgencyNotFound  = errs.New("agency not found")
	ErrDuplicateReview = errs.New("review already submitted today")
)

type SubmitReviewCommand struct {
	AgencyID int64
	Rating   int
	Comment  string
}

type SubmitReviewResult struct {
	ReviewID int64
}

type ReviewCommands interface {
	SubmitReview(ctx context.Context, cmd SubmitReviewCommand, userID int64) (*SubmitReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, cmd SubmitReviewCommand, userID int64) (*SubmitReviewResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ag, derr := tx.Reads().AgencyByID(ctx, cmd.AgencyID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAgencyNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		rev, derr := domreview.NewReview(userID, ag.ID(), cmd.Rating, cmd.Comment, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			// One review per user, agency and calendar day
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDuplicateReview
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrAgencyNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitReviewResult{ReviewID: createdID}, nil
}
