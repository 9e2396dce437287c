package queries

import (
	"context"

	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var ErrPaymentNotFound = errs.ErrPaymentNotFound

type PaymentReadStore interface {
	FindByReference(ctx context.Context, ref string) (*PaymentView, error)
	FindByBookingID(ctx context.Context, bookingID int64) (*PaymentView, error)
}

type PaymentQueries interface {
	GetByReference(ctx context.Context, ref string) (*PaymentView, error)
	GetByBookingID(ctx context.Context, bookingID int64) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByReference(ctx context.Context, ref string) (*PaymentView, error) {
	p, err := q.repo.FindByReference(ctx, ref)
	if err != nil {
		return nil, mapPaymentErr(err)
	}
	return p, nil
}

func (q *paymentQueriesImpl) GetByBookingID(ctx context.Context, bookingID int64) (*PaymentView, error) {
	p, err := q.repo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, mapPaymentErr(err)
	}
	return p, nil
}

func mapPaymentErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrPaymentNotFound
	}
	return err
}
