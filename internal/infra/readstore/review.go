package readstore

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type ReviewReadQueries interface {
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reviews, error)
	ListReviewsByListingFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByListingFirstPageParams) ([]sqlc.Reviews, error)
	ListReviewsByListingKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByListingKeysetParams) ([]sqlc.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) FindByListingFirstPage(ctx context.Context, listingID int64, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByListingFirstPage(ctx, r.db, sqlc.ListReviewsByListingFirstPageParams{
		ListingID: listingID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by listing", err)
	}
	return mapReviewRows(rows), nil
}

func (r *ReviewReadStore) FindByListingKeyset(ctx context.Context, listingID int64, lastCreatedAt time.Time, lastID int64, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByListingKeyset(ctx, r.db, sqlc.ListReviewsByListingKeysetParams{
		ListingID:  listingID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by listing", err)
	}
	return mapReviewRows(rows), nil
}

func toReviewView(row sqlc.Reviews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:           row.ID,
		ListingID:    row.ListingID,
		ReviewerName: row.ReviewerName,
		Rating:       row.Rating,
		Comment:      row.Comment,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapReviewRows(rows []sqlc.Reviews) []*queries.ReviewView {
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(row)
	}
	return result
}
