//go:build unit

package seed_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/seed"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/errs"
	"travel-booking/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)

type recordingFlusher struct {
	calls []string
	err   error
}

func (f *recordingFlusher) DeleteAllReviews(context.Context, sqlc.DBTX) error {
	f.calls = append(f.calls, "reviews")
	return f.err
}

func (f *recordingFlusher) DeleteAllBookings(context.Context, sqlc.DBTX) error {
	f.calls = append(f.calls, "bookings")
	return nil
}

func (f *recordingFlusher) DeleteAllListings(context.Context, sqlc.DBTX) error {
	f.calls = append(f.calls, "listings")
	return nil
}

func TestPlan(t *testing.T) {
	plans, err := seed.Plan(seed.Options{Listings: 2, BookingsPerListing: 2, ReviewsPerListing: 3}, today)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	second := plans[1]
	assert.Equal(t, "Cozy Stay #2", second.Attributes.Title)
	assert.Equal(t, "City 2", second.Attributes.Location)
	assert.Equal(t, "70.00", second.Attributes.PricePerNight.String())
	assert.Equal(t, 4, second.Attributes.MaxGuests)

	first := plans[0]
	require.Len(t, first.Bookings, 2)
	b2 := first.Bookings[1]
	assert.Equal(t, "Guest 1-2", b2.GuestName)
	assert.Equal(t, "guest12@example.com", b2.GuestEmail)
	assert.Equal(t, time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), b2.StartDate)
	assert.Equal(t, time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC), b2.EndDate)
	assert.Equal(t, int64(12000), b2.TotalPrice.Cents())
	assert.False(t, b2.Confirmed)
	assert.True(t, first.Bookings[0].Confirmed)

	ratings := []int{}
	for _, r := range first.Reviews {
		ratings = append(ratings, r.Rating)
	}
	assert.Equal(t, []int{4, 5, 3}, ratings)
	assert.Equal(t, "Reviewer 1-3", first.Reviews[2].ReviewerName)
}

func TestSeeder_Run(t *testing.T) {
	opts := seed.Options{Listings: 1, BookingsPerListing: 2, ReviewsPerListing: 2}

	t.Run("inserts through repositories", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		flusher := &recordingFlusher{}

		res, err := seed.NewSeeder(uow, flusher).Run(context.Background(), mustPlan(t, opts), false, today)
		require.NoError(t, err)

		assert.Equal(t, seed.Result{Listings: 1, Bookings: 2, Reviews: 2}, res)
		assert.Empty(t, flusher.calls)

		l, ok := uow.Listing(1)
		require.True(t, ok)
		assert.Equal(t, "Cozy Stay #1", l.Title)

		confirmed, _ := uow.Booking(2)
		assert.Equal(t, booking.StatusConfirmed.String(), confirmed.Status)
		pending, _ := uow.Booking(3)
		assert.Equal(t, booking.StatusPending.String(), pending.Status)

		rev, ok := uow.Review(4)
		require.True(t, ok)
		assert.Equal(t, "Great place. Would stay again!", rev.Comment)
	})

	t.Run("flush runs children first", func(t *testing.T) {
		flusher := &recordingFlusher{}
		_, err := seed.NewSeeder(fake.NewUnitOfWork(), flusher).Run(context.Background(), nil, true, today)
		require.NoError(t, err)
		assert.Equal(t, []string{"reviews", "bookings", "listings"}, flusher.calls)
	})

	t.Run("flush failure rolls back", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		flusher := &recordingFlusher{err: errs.New("boom")}

		_, err := seed.NewSeeder(uow, flusher).Run(context.Background(), mustPlan(t, opts), true, today)
		require.Error(t, err)
		assert.Equal(t, 1, uow.Rollbacks)
		_, ok := uow.Listing(1)
		assert.False(t, ok)
	})
}

func mustPlan(t *testing.T, opts seed.Options) []seed.ListingPlan {
	t.Helper()
	plans, err := seed.Plan(opts, today)
	require.NoError(t, err)
	return plans
}
