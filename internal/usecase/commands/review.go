package commands

import (
	"context"

	domreview "travel-booking/internal/domain/review"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/shared"
)

type CreateReviewRequest struct {
	ListingID    int64
	ReviewerName string
	Rating       int
	Comment      string
}

type ReviewChanges struct {
	ReviewerName *string
	Rating       *int
	Comment      *string
}

type ReviewCommands interface {
	Create(ctx context.Context, req CreateReviewRequest) (int64, error)
	Update(ctx context.Context, reviewID int64, changes ReviewChanges) error
	Delete(ctx context.Context, reviewID int64) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) Create(ctx context.Context, req CreateReviewRequest) (int64, error) {
	rev, err := domreview.NewReview(req.ListingID, req.ReviewerName, req.Rating, req.Comment, uc.clock.Now())
	if err != nil {
		return 0, invalid(err)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ListingByID(ctx, req.ListingID); derr != nil {
			return notFoundAs(derr, ErrListingNotFound)
		}
		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return createdID, nil
}

func (uc *reviewUseCaseImpl) Update(ctx context.Context, reviewID int64, changes ReviewChanges) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			return notFoundAs(derr, ErrReviewNotFound)
		}

		agg := snap.ToDomain()
		derr = agg.Revise(
			ptr.Coalesce(changes.ReviewerName, snap.ReviewerName),
			ptr.Coalesce(changes.Rating, snap.Rating),
			ptr.Coalesce(changes.Comment, snap.Comment),
			uc.clock.Now(),
		)
		if derr != nil {
			return invalid(derr)
		}
		return notFoundAs(tx.Reviews().Update(ctx, tx.DB(), agg), ErrReviewNotFound)
	})
}

func (uc *reviewUseCaseImpl) Delete(ctx context.Context, reviewID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Reviews().Delete(ctx, tx.DB(), reviewID), ErrReviewNotFound)
	})
}
