//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBookingFixture(t *testing.T) (*fake.UnitOfWork, commands.BookingCommands, int64) {
	t.Helper()
	uow := fake.NewUnitOfWork()
	listingID := uow.SeedListing(shared.ListingSnapshot{Title: "Beach House"})
	bookingID := uow.SeedBooking(shared.BookingSnapshot{
		ListingID:       listingID,
		GuestName:       "Jane Doe",
		GuestEmail:      "jane@example.com",
		StartDate:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPriceCents: 10000,
		Status:          booking.StatusPending.String(),
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	})
	uow.SeedPayment(shared.PaymentSnapshot{
		BookingID:        bookingID,
		BookingReference: "BK-2-ABCDEF12",
		AmountCents:      10000,
		Status:           "PENDING",
	})
	return uow, commands.NewBookingUseCase(uow, clock.NewMockClock(fixedNow)), bookingID
}

func TestBookingCommands_Update(t *testing.T) {
	t.Run("partial update keeps other fields", func(t *testing.T) {
		uow, uc, id := seedBookingFixture(t)

		err := uc.Update(context.Background(), id, commands.BookingChanges{
			EndDate:         ptr.Of(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
			TotalPriceCents: ptr.Of(int64(20000)),
		})
		require.NoError(t, err)

		got, _ := uow.Booking(id)
		assert.Equal(t, "Jane Doe", got.GuestName)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got.EndDate)
		assert.Equal(t, int64(20000), got.TotalPriceCents)

		p, _ := uow.PaymentByBooking(id)
		assert.Equal(t, int64(10000), p.AmountCents)
	})

	t.Run("status can be set directly", func(t *testing.T) {
		uow, uc, id := seedBookingFixture(t)

		require.NoError(t, uc.Update(context.Background(), id, commands.BookingChanges{Status: ptr.Of("CANCELLED")}))

		got, _ := uow.Booking(id)
		assert.Equal(t, booking.StatusCancelled.String(), got.Status)
	})

	tests := []struct {
		name    string
		changes commands.BookingChanges
		errIs   error
	}{
		{"unknown status", commands.BookingChanges{Status: ptr.Of("ARCHIVED")}, booking.ErrInvalidStatus},
		{"end before start", commands.BookingChanges{EndDate: ptr.Of(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))}, booking.ErrInvalidStayPeriod},
		{"invalid email", commands.BookingChanges{GuestEmail: ptr.Of("jane")}, booking.ErrInvalidGuestEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow, uc, id := seedBookingFixture(t)

			err := uc.Update(context.Background(), id, tt.changes)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			assert.True(t, errs.Is(err, tt.errIs))

			got, _ := uow.Booking(id)
			assert.Equal(t, booking.StatusPending.String(), got.Status)
		})
	}

	t.Run("unknown booking", func(t *testing.T) {
		_, uc, _ := seedBookingFixture(t)
		err := uc.Update(context.Background(), 999, commands.BookingChanges{GuestName: ptr.Of("x")})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	t.Run("removes payment with booking", func(t *testing.T) {
		uow, uc, id := seedBookingFixture(t)

		require.NoError(t, uc.Delete(context.Background(), id))

		_, ok := uow.Booking(id)
		assert.False(t, ok)
		_, ok = uow.PaymentByBooking(id)
		assert.False(t, ok)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, uc, _ := seedBookingFixture(t)
		assert.ErrorIs(t, uc.Delete(context.Background(), 999), commands.ErrBookingNotFound)
	})
}
