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

func TestPaymentReadStore_FindByReference(t *testing.T) {
	ctx := context.Background()
	ref := "BK-1-ABCDEF12"
	now := time.Now()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockPaymentReadQueries)
		expectKind infra.RepositoryErrorKind
		check      func(t *testing.T, txID *string)
	}{
		{
			name: "success: pending payment without transaction id",
			setupMock: func(mock *readstoremock.MockPaymentReadQueries) {
				mock.EXPECT().GetPaymentByReference(ctx, gomock.Any(), ref).Return(sqlc.Payments{
					ID: 3, BookingID: 1, BookingReference: ref, AmountCents: 10000, Status: "PENDING",
					CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
					UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
				}, nil)
			},
			check: func(t *testing.T, txID *string) { assert.Nil(t, txID) },
		},
		{
			name: "success: completed payment carries transaction id",
			setupMock: func(mock *readstoremock.MockPaymentReadQueries) {
				mock.EXPECT().GetPaymentByReference(ctx, gomock.Any(), ref).Return(sqlc.Payments{
					ID: 3, BookingID: 1, BookingReference: ref, AmountCents: 10000, Status: "COMPLETED",
					TransactionID: pgtype.Text{String: "ext-99", Valid: true},
				}, nil)
			},
			check: func(t *testing.T, txID *string) {
				require.NotNil(t, txID)
				assert.Equal(t, "ext-99", *txID)
			},
		},
		{
			name: "error: payment not found",
			setupMock: func(mock *readstoremock.MockPaymentReadQueries) {
				mock.EXPECT().GetPaymentByReference(ctx, gomock.Any(), ref).Return(sqlc.Payments{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockPaymentReadQueries) {
				mock.EXPECT().GetPaymentByReference(ctx, gomock.Any(), ref).Return(sqlc.Payments{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
			store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByReference(ctx, ref)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ref, result.BookingReference)
			assert.Equal(t, int64(10000), result.AmountCents)
			tc.check(t, result.TransactionID)
		})
	}
}

func TestPaymentReadStore_FindByBookingID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPaymentReadQueries(ctrl)
	mockQueries.EXPECT().GetPaymentByBookingID(ctx, gomock.Any(), int64(5)).Return(sqlc.Payments{}, pgx.ErrNoRows)

	store := readstore.NewPaymentReadStore(mockQueries, &mockDBTX{})
	result, err := store.FindByBookingID(ctx, 5)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Nil(t, result)
}
