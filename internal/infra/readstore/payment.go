package readstore

import (
	"context"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type PaymentReadQueries interface {
	GetPaymentByReference(ctx context.Context, db sqlc.DBTX, bookingReference string) (sqlc.Payments, error)
	GetPaymentByBookingID(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByReference(ctx context.Context, ref string) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByReference(ctx, r.db, ref)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by reference", err)
	}
	return toPaymentView(row), nil
}

func (r *PaymentReadStore) FindByBookingID(ctx context.Context, bookingID int64) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment by booking", err)
	}
	return toPaymentView(row), nil
}

func toPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:               row.ID,
		BookingID:        row.BookingID,
		BookingReference: row.BookingReference,
		TransactionID:    pgconv.StringPtrFromPgtype(row.TransactionID),
		AmountCents:      row.AmountCents,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
