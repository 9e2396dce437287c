package readstore

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Listings, error)
	ListListingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Listings, error)
	ListListingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsKeysetParams) ([]sqlc.Listings, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id int64) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing by id", err)
	}
	return toListingView(row), nil
}

func (r *ListingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	return mapListingRows(rows), nil
}

func (r *ListingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID int64, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsKeyset(ctx, r.db, sqlc.ListListingsKeysetParams{
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings keyset", err)
	}
	return mapListingRows(rows), nil
}

func toListingView(row sqlc.Listings) *queries.ListingView {
	return &queries.ListingView{
		ID:                 row.ID,
		Title:              row.Title,
		Description:        row.Description,
		Location:           row.Location,
		PricePerNightCents: row.PricePerNightCents,
		MaxGuests:          row.MaxGuests,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapListingRows(rows []sqlc.Listings) []*queries.ListingView {
	result := make([]*queries.ListingView, len(rows))
	for i, row := range rows {
		result[i] = toListingView(row)
	}
	return result
}
