package queries

import (
	"context"
	"time"

	"travel-booking/internal/infra"
)

type ListingReadStore interface {
	FindByID(ctx context.Context, id int64) (*ListingView, error)
	FindFirstPage(ctx context.Context, limit int32) ([]*ListingView, error)
	FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID int64, limit int32) ([]*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id int64) (*ListingView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
}

type listingQueriesImpl struct {
	repo ListingReadStore
}

func NewListingQueries(repo ListingReadStore) ListingQueries {
	return &listingQueriesImpl{repo: repo}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id int64) (*ListingView, error) {
	l, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

func (q *listingQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	return page(cursor, limit,
		func(n int32) ([]*ListingView, error) {
			return q.repo.FindFirstPage(ctx, n)
		},
		func(t time.Time, id int64, n int32) ([]*ListingView, error) {
			return q.repo.FindKeyset(ctx, t, id, n)
		},
		func(v *ListingView) (time.Time, int64) { return v.CreatedAt, v.ID },
	)
}
