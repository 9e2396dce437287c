package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

const (
	KindEmail             = "email"
	TopicBookingConfirmed = "booking.confirmed"
)

type BookingConfirmedPayload struct {
	BookingID int64 `json:"booking_id"`
}

// OutboxNotifier schedules confirmation delivery by writing a notification job.
type OutboxNotifier struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOutboxNotifier(uow shared.UnitOfWork, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{uow: uow, clock: clk}
}

func (n *OutboxNotifier) BookingConfirmed(ctx context.Context, bookingID int64) error {
	payload, err := json.Marshal(BookingConfirmedPayload{BookingID: bookingID})
	if err != nil {
		return errs.Wrap(err, "marshal booking confirmed payload")
	}

	err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), KindEmail, TopicBookingConfirmed, payload, n.clock.Now())
	})
	if err != nil {
		return errs.Wrap(err, "enqueue booking confirmation")
	}

	slog.Info("Booking confirmation queued", "booking_id", bookingID)
	return nil
}
