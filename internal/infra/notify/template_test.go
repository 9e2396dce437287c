//go:build unit

package notify_test

import (
	"testing"
	"time"

	"travel-booking/internal/infra/notify"
	"travel-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirmation(t *testing.T) {
	b := &shared.BookingSnapshot{
		ID:              12,
		GuestName:       "Jane Doe",
		GuestEmail:      "jane@example.com",
		StartDate:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPriceCents: 10000,
	}
	l := &shared.ListingSnapshot{Title: "Beach House", Location: "Mombasa"}

	msg, err := notify.BookingConfirmation(b, l, "noreply@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Booking Confirmation - Beach House", msg.Subject)
	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, int64(12), msg.BookingID)
	for _, want := range []string{
		"Dear Jane Doe,",
		"- Listing: Beach House",
		"- Location: Mombasa",
		"- Check-in: 2026-03-10",
		"- Check-out: 2026-03-12",
		"- Total Amount: $100.00",
		"- Booking Reference: #12",
	} {
		assert.Contains(t, msg.Body, want)
	}
}
