//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/readstore"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	readstoremock "travel-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success: joins listing title and location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), int64(1)).Return(sqlc.GetBookingByIDRow{
			ID:              1,
			ListingID:       2,
			GuestName:       "Jane Doe",
			GuestEmail:      "jane@example.com",
			StartDate:       pgtype.Date{Time: start, Valid: true},
			EndDate:         pgtype.Date{Time: start.AddDate(0, 0, 2), Valid: true},
			TotalPriceCents: 10000,
			Status:          "PENDING",
			ListingTitle:    "Seaside Cottage",
			ListingLocation: "Lisbon",
		}, nil)

		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
		result, err := store.FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Seaside Cottage", result.ListingTitle)
		assert.Equal(t, "Lisbon", result.ListingLocation)
		assert.True(t, start.Equal(result.StartDate))
		assert.True(t, start.AddDate(0, 0, 2).Equal(result.EndDate))
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), int64(1)).Return(sqlc.GetBookingByIDRow{}, pgx.ErrNoRows)

		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
		result, err := store.FindByID(ctx, 1)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, result)
	})
}

func TestBookingReadStore_FindFirstPage(t *testing.T) {
	ctx := context.Background()
	listingID := int64(2)

	testCases := []struct {
		name           string
		listingID      *int64
		expectedFilter pgtype.Int8
	}{
		{
			name:           "without listing filter",
			listingID:      nil,
			expectedFilter: pgtype.Int8{},
		},
		{
			name:           "with listing filter",
			listingID:      &listingID,
			expectedFilter: pgtype.Int8{Int64: listingID, Valid: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			mockQueries.EXPECT().
				ListBookingsFirstPage(ctx, gomock.Any(), sqlc.ListBookingsFirstPageParams{ListingID: tc.expectedFilter, LimitCount: 21}).
				Return([]sqlc.Bookings{{ID: 1, ListingID: listingID, Status: "CONFIRMED"}}, nil)

			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
			result, err := store.FindFirstPage(ctx, tc.listingID, 21)

			require.NoError(t, err)
			require.Len(t, result, 1)
			assert.Equal(t, "CONFIRMED", result[0].Status)
		})
	}
}
