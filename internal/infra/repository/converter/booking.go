package converter

import (
	"travel-booking/internal/domain/booking"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ListingID:       b.ListingID(),
		GuestName:       b.GuestName().String(),
		GuestEmail:      b.GuestEmail().String(),
		StartDate:       pgconv.DateToPgtype(b.Period().Start()),
		EndDate:         pgconv.DateToPgtype(b.Period().End()),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:              b.ID(),
		GuestName:       b.GuestName().String(),
		GuestEmail:      b.GuestEmail().String(),
		StartDate:       pgconv.DateToPgtype(b.Period().Start()),
		EndDate:         pgconv.DateToPgtype(b.Period().End()),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
