package queries

import (
	"context"
	"time"

	"travel-booking/internal/infra"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	FindByListingFirstPage(ctx context.Context, listingID int64, limit int32) ([]*ReviewView, error)
	FindByListingKeyset(ctx context.Context, listingID int64, lastCreatedAt time.Time, lastID int64, limit int32) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id int64) (*ReviewView, error)
	ListByListing(ctx context.Context, listingID int64, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type reviewQueriesImpl struct {
	repo     ReviewReadStore
	listings ListingReadStore
}

func NewReviewQueries(repo ReviewReadStore, listings ListingReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, listings: listings}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int64) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, listingID int64, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, err
	}
	return page(cursor, limit,
		func(n int32) ([]*ReviewView, error) {
			return q.repo.FindByListingFirstPage(ctx, listingID, n)
		},
		func(t time.Time, id int64, n int32) ([]*ReviewView, error) {
			return q.repo.FindByListingKeyset(ctx, listingID, t, id, n)
		},
		func(v *ReviewView) (time.Time, int64) { return v.CreatedAt, v.ID },
	)
}
