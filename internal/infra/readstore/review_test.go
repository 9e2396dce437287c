//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/readstore"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	readstoremock "travel-booking/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

func reviewRow(id, listingID int64, createdAt time.Time) sqlc.Reviews {
	return sqlc.Reviews{
		ID:           id,
		ListingID:    listingID,
		ReviewerName: "Alice Reviewer",
		Rating:       5,
		Comment:      "Great service!",
		CreatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReviewReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	reviewID := int64(42)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReviewReadQueries, int64)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review found",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, id int64) {
				mock.EXPECT().GetReviewByID(ctx, gomock.Any(), id).Return(reviewRow(id, 7, time.Now()), nil)
			},
			expectedError: false,
		},
		{
			name: "error: review not found",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, id int64) {
				mock.EXPECT().GetReviewByID(ctx, gomock.Any(), id).Return(sqlc.Reviews{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReviewReadQueries, id int64) {
				mock.EXPECT().GetReviewByID(ctx, gomock.Any(), id).Return(sqlc.Reviews{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries, reviewID)

			result, actualError := store.FindByID(ctx, reviewID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				assert.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, reviewID, result.ID)
				assert.Equal(t, int32(5), result.Rating)
			}
		})
	}
}

// =============================================================================
// FindByListing Tests
// =============================================================================

func TestReviewReadStore_FindByListingFirstPage(t *testing.T) {
	ctx := context.Background()
	listingID := int64(7)
	now := time.Now()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockReviewReadQueries)
		expectedCount int
		expectedError bool
	}{
		{
			name: "success: multiple reviews",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().
					ListReviewsByListingFirstPage(ctx, gomock.Any(), sqlc.ListReviewsByListingFirstPageParams{ListingID: listingID, Limit: 11}).
					Return([]sqlc.Reviews{reviewRow(2, listingID, now), reviewRow(1, listingID, now.Add(-time.Hour))}, nil)
			},
			expectedCount: 2,
		},
		{
			name: "success: no reviews",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByListingFirstPage(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.Reviews{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockReviewReadQueries) {
				mock.EXPECT().ListReviewsByListingFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
			store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			result, err := store.FindByListingFirstPage(ctx, listingID, 11)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tc.expectedCount)
		})
	}
}

func TestReviewReadStore_FindByListingKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingID := int64(7)
	lastCreatedAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	mockQueries := readstoremock.NewMockReviewReadQueries(ctrl)
	mockQueries.EXPECT().
		ListReviewsByListingKeyset(ctx, gomock.Any(), sqlc.ListReviewsByListingKeysetParams{
			ListingID:  listingID,
			CreatedAt:  pgtype.Timestamptz{Time: lastCreatedAt, Valid: true},
			ID:         9,
			LimitCount: 3,
		}).
		Return([]sqlc.Reviews{reviewRow(8, listingID, lastCreatedAt.Add(-time.Minute))}, nil)

	store := readstore.NewReviewReadStore(mockQueries, &mockDBTX{})
	result, err := store.FindByListingKeyset(ctx, listingID, lastCreatedAt, 9, 3)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(8), result[0].ID)
	assert.Equal(t, "Alice Reviewer", result[0].ReviewerName)
}

// =============================================================================
// Helper Types
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
