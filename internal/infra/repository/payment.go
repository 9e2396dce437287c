package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository/converter"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (int64, error)
	TransitionPaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionPaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on ON CONFLICT DO NOTHING: an empty RETURNING means either the
// booking already owns a payment or the reference collided.
func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (int64, bool, error) {
	id, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to create payment", err)
	}
	return id, true, nil
}

func (r *PaymentRepository) TransitionStatus(ctx context.Context, tx sqlc.DBTX, ref payment.Reference, from []payment.Status, to payment.Status, transactionID *string, at time.Time) (bool, error) {
	n, err := r.queries.TransitionPaymentStatus(ctx, tx, sqlc.TransitionPaymentStatusParams{
		ToStatus:         to.String(),
		TransactionID:    pgconv.StringPtrToPgtype(transactionID),
		UpdatedAt:        pgconv.TimeToPgtype(at),
		BookingReference: ref.String(),
		FromStatuses:     converter.StatusesToStrings(from),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition payment status", err)
	}
	return n == 1, nil
}
