package repository

import (
	"context"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (sqlc.Listings, error)
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) (int64, error)
	DeleteListing(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (int64, error) {
	row, err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create listing", err)
	}
	return row.ID, nil
}

func (r *ListingRepository) Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	n, err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to the listing's bookings, payments and reviews.
func (r *ListingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteListing(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete listing", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
