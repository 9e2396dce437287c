package payment

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrAlreadyCompleted  = errs.New("payment already completed")
	ErrMissingBooking    = errs.New("payment requires a booking")
	ErrMissingReference  = errs.New("payment requires a booking reference")
	ErrInvalidTransition = errs.New("invalid payment status transition")
)

type Payment struct {
	id            int64
	bookingID     int64
	reference     Reference
	transactionID *string
	amount        money.Money
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment starts a Pending attempt; amount is fixed for the record's lifetime.
func NewPayment(bookingID int64, ref Reference, amount money.Money, now time.Time) (*Payment, error) {
	if bookingID <= 0 {
		return nil, ErrMissingBooking
	}
	if ref == "" {
		return nil, ErrMissingReference
	}
	if amount.Cents() < 0 {
		return nil, money.ErrNegativeAmount
	}
	return &Payment{
		bookingID: bookingID,
		reference: ref,
		amount:    amount,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPayment(id, bookingID int64, ref Reference, transactionID *string, amount money.Money, status Status, createdAt, updatedAt time.Time) *Payment {
	return &Payment{
		id:            id,
		bookingID:     bookingID,
		reference:     ref,
		transactionID: transactionID,
		amount:        amount,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// EnsureInitiable guards against charging a booking twice.
func (p *Payment) EnsureInitiable() error {
	if p.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	return nil
}

func (p *Payment) Complete(transactionID string, now time.Time) error {
	if !p.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	p.status = StatusCompleted
	p.transactionID = &transactionID
	p.updatedAt = now
	return nil
}

func (p *Payment) Fail(now time.Time) error {
	if !p.status.CanTransitionTo(StatusFailed) {
		return ErrInvalidTransition
	}
	p.status = StatusFailed
	p.updatedAt = now
	return nil
}

func (p *Payment) ID() int64              { return p.id }
func (p *Payment) BookingID() int64       { return p.bookingID }
func (p *Payment) Reference() Reference   { return p.reference }
func (p *Payment) TransactionID() *string { return p.transactionID }
func (p *Payment) Amount() money.Money    { return p.amount }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) IsCompleted() bool      { return p.status == StatusCompleted }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time   { return p.updatedAt }
