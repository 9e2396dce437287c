package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, tx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID int64, status booking.Status, at time.Time) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:        bookingID,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteBooking(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
