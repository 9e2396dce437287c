//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/tests/common/builder"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Review Tests
// =============================================================================

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockReviewWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: review created successfully",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error) {
						assert.Equal(t, int32(5), arg.Rating)
						assert.Equal(t, "Alice Reviewer", arg.ReviewerName)
						return sqlc.Reviews{ID: 7}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(sqlc.Reviews{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: listing vanished",
			setupMock: func(mock *repositorymock.MockReviewWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"reviews\" violates foreign key constraint"}
				mock.EXPECT().CreateReview(ctx, tx, gomock.Any()).Return(sqlc.Reviews{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			domainReview, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			reviewID, actualError := repo.Create(ctx, mockDB, domainReview)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Zero(t, reviewID, "reviewID should be zero when error occurs")
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, int64(7), reviewID)
			}
		})
	}
}

// =============================================================================
// Update / Delete Review Tests
// =============================================================================

func TestReviewRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: review updated successfully", rows: 1},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{name: "error: review not found", rows: 0, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			rev := review.ReconstructReview(3, 1, "Alice Reviewer", 4, "Nice", builder.NewReviewBuilder().CreatedAt, builder.NewReviewBuilder().UpdatedAt)
			mockQueries.EXPECT().UpdateReview(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error) {
					assert.Equal(t, int64(3), arg.ID)
					return tc.rows, tc.dbErr
				})

			actualError := repo.Update(ctx, mockDB, rev)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	ctx := context.Background()
	reviewID := int64(11)

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: review deleted successfully", rows: 1},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
		{name: "error: review not found", rows: 0, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReviewWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReviewRepository(mockQueries, mockDB)

			mockQueries.EXPECT().DeleteReview(ctx, mockDB, reviewID).Return(tc.rows, tc.dbErr)

			actualError := repo.Delete(ctx, mockDB, reviewID)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
