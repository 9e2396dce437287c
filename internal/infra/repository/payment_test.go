//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/tests/common/builder"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		returnID    int64
		dbErr       error
		wantCreated bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: inserted", returnID: 9, wantCreated: true},
		{name: "conflict: nothing returned", dbErr: pgx.ErrNoRows},
		{name: "error: database failure", dbErr: errors.New("broken pipe"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			p, err := builder.NewPaymentBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreatePayment(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreatePaymentParams) (int64, error) {
					assert.Equal(t, "BK-1-ABCDEF12", arg.BookingReference)
					assert.Equal(t, int64(10000), arg.AmountCents)
					assert.Equal(t, "PENDING", arg.Status)
					return tc.returnID, tc.dbErr
				})

			id, created, err := repo.Create(ctx, mockDB, p)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCreated, created)
			assert.Equal(t, tc.returnID, id)
		})
	}
}

func TestPaymentRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	txID := "chapa-1"

	testCases := []struct {
		name      string
		rows      int64
		dbErr     error
		wantMoved bool
		wantErr   bool
	}{
		{name: "moved", rows: 1, wantMoved: true},
		{name: "lost the race", rows: 0},
		{name: "database failure", dbErr: errors.New("timeout"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockPaymentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewPaymentRepository(mockQueries, mockDB)

			mockQueries.EXPECT().TransitionPaymentStatus(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionPaymentStatusParams) (int64, error) {
					assert.Equal(t, "COMPLETED", arg.ToStatus)
					assert.Equal(t, []string{"PENDING", "FAILED"}, arg.FromStatuses)
					assert.Equal(t, txID, arg.TransactionID.String)
					assert.True(t, arg.TransactionID.Valid)
					assert.Equal(t, at, arg.UpdatedAt.Time)
					return tc.rows, tc.dbErr
				})

			moved, err := repo.TransitionStatus(ctx, mockDB, "BK-1-ABCDEF12",
				payment.SourcesFor(payment.StatusCompleted), payment.StatusCompleted, &txID, at)

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantMoved, moved)
		})
	}
}
