package readstore

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingByIDRow, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.Bookings, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return &queries.BookingView{
		ID:              row.ID,
		ListingID:       row.ListingID,
		ListingTitle:    row.ListingTitle,
		ListingLocation: row.ListingLocation,
		GuestName:       row.GuestName,
		GuestEmail:      row.GuestEmail,
		StartDate:       pgconv.DateFromPgtype(row.StartDate),
		EndDate:         pgconv.DateFromPgtype(row.EndDate),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, listingID *int64, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		ListingID:  pgconv.Int64PtrToPgtype(listingID),
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return mapBookingRows(rows), nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, listingID *int64, lastCreatedAt time.Time, lastID int64, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		ListingID:  pgconv.Int64PtrToPgtype(listingID),
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		LimitCount: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return mapBookingRows(rows), nil
}

func mapBookingRows(rows []sqlc.Bookings) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BookingView{
			ID:              row.ID,
			ListingID:       row.ListingID,
			GuestName:       row.GuestName,
			GuestEmail:      row.GuestEmail,
			StartDate:       pgconv.DateFromPgtype(row.StartDate),
			EndDate:         pgconv.DateFromPgtype(row.EndDate),
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result
}
