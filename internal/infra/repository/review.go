package repository

import (
	"context"

	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error) {
	params := converter.ReviewToCreateParams(rev)
	row, err := r.queries.CreateReview(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, reviewID int64) error {
	n, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
