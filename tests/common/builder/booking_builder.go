//go:build unit || e2e || integration

package builder

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

type BookingBuilder struct {
	ID         int64
	ListingID  int64
	GuestName  string
	GuestEmail string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice money.Money
	Status     booking.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &BookingBuilder{
		ID:         1,
		ListingID:  1,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: money.FromCents(10000),
		Status:     booking.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithListingID(id int64) *BookingBuilder {
	b.ListingID = id
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.GuestName = name
	return b
}

func (b *BookingBuilder) WithGuestEmail(email string) *BookingBuilder {
	b.GuestEmail = email
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithTotalPrice(m money.Money) *BookingBuilder {
	b.TotalPrice = m
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) Details() booking.Details {
	return booking.Details{
		ListingID:  b.ListingID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(b.Details(), b.CreatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		StartDate:       pgtype.Date{Time: b.StartDate, Valid: true},
		EndDate:         pgtype.Date{Time: b.EndDate, Valid: true},
		TotalPriceCents: b.TotalPrice.Cents(),
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildSnapshot() shared.BookingSnapshot {
	return shared.BookingSnapshot{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.TotalPrice.Cents(),
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		TotalPriceCents: b.TotalPrice.Cents(),
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// BuildRequestBody is the JSON body accepted by POST /bookings.
func (b *BookingBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"listing":     b.ListingID,
		"guest_name":  b.GuestName,
		"guest_email": b.GuestEmail,
		"start_date":  b.StartDate.Format(dateLayout),
		"end_date":    b.EndDate.Format(dateLayout),
		"total_price": b.TotalPrice.String(),
	}
}
