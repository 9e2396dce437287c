package queries

import (
	"context"
	"time"

	"travel-booking/internal/infra"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindFirstPage(ctx context.Context, listingID *int64, limit int32) ([]*BookingView, error)
	FindKeyset(ctx context.Context, listingID *int64, lastCreatedAt time.Time, lastID int64, limit int32) ([]*BookingView, error)
}

type BookingFilters struct {
	ListingID *int64
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListByListing(ctx context.Context, listingID int64, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo     BookingReadStore
	listings ListingReadStore
}

func NewBookingQueries(repo BookingReadStore, listings ListingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo, listings: listings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	return page(cursor, limit,
		func(n int32) ([]*BookingView, error) {
			return q.repo.FindFirstPage(ctx, filters.ListingID, n)
		},
		func(t time.Time, id int64, n int32) ([]*BookingView, error) {
			return q.repo.FindKeyset(ctx, filters.ListingID, t, id, n)
		},
		func(v *BookingView) (time.Time, int64) { return v.CreatedAt, v.ID },
	)
}

// ListByListing differs from List by failing for an unknown listing.
func (q *bookingQueriesImpl) ListByListing(ctx context.Context, listingID int64, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, err
	}
	return q.List(ctx, BookingFilters{ListingID: &listingID}, cursor, limit)
}
