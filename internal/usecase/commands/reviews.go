package commands

import (
	"context"

	"levelup-store/internal/domain/review"
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/clock"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewNotOwned = errs.New("review not owned by user")

type CreateReviewRequest struct {
	ProductID    uuid.UUID
	Calificacion int
	Texto        string
}

type ReviewCommands interface {
	Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error)
	Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error) {
	rev, err := review.NewReview(userID, req.ProductID, req.Calificacion, req.Texto, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, req.ProductID); derr != nil {
			return markProductNotFound(derr)
		}
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// Delete allows the author or an admin to drop a review.
func (uc *reviewUseCaseImpl) Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrReviewNotFound)
			}
			return derr
		}
		if actorRole != shared.RoleAdmin && snap.UserID != actorID {
			return ErrReviewNotOwned
		}
		return tx.Reviews().Delete(ctx, tx.DB(), reviewID)
	})
}
