package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

// BookingChanges leaves a field untouched when it is nil. The payment amount
// is never re-derived from a new total.
type BookingChanges struct {
	GuestName       *string
	GuestEmail      *string
	StartDate       *time.Time
	EndDate         *time.Time
	TotalPriceCents *int64
	Status          *string
}

type bookingFields struct {
	GuestName       string
	GuestEmail      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          string
}

type BookingCommands interface {
	Update(ctx context.Context, id int64, changes BookingChanges) error
	Delete(ctx context.Context, id int64) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) Update(ctx context.Context, id int64, changes BookingChanges) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		merged := bookingFields{
			GuestName:       snap.GuestName,
			GuestEmail:      snap.GuestEmail,
			StartDate:       snap.StartDate,
			EndDate:         snap.EndDate,
			TotalPriceCents: snap.TotalPriceCents,
			Status:          snap.Status,
		}
		if err := copier.CopyWithOption(&merged, &changes, copier.Option{IgnoreEmpty: true}); err != nil {
			return errs.Wrap(err, "merge booking changes")
		}

		b := snap.ToDomain()
		if err := b.Update(booking.Details{
			GuestName:  merged.GuestName,
			GuestEmail: merged.GuestEmail,
			StartDate:  merged.StartDate,
			EndDate:    merged.EndDate,
			TotalPrice: money.FromCents(merged.TotalPriceCents),
		}, booking.Status(merged.Status), uc.clock.Now()); err != nil {
			return invalid(err)
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		if merged.Status != snap.Status {
			slog.Info("Booking status changed", "booking_id", id, "from", snap.Status, "to", merged.Status)
		}
		return nil
	})
}

// Delete removes the booking together with its payment record.
func (uc *bookingUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Bookings().Delete(ctx, tx.DB(), id), ErrBookingNotFound)
	})
}
