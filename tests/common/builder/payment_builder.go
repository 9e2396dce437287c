//go:build unit || e2e || integration

package builder

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentBuilder struct {
	ID            int64
	BookingID     int64
	Reference     payment.Reference
	TransactionID *string
	Amount        money.Money
	Status        payment.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &PaymentBuilder{
		ID:        1,
		BookingID: 1,
		Reference: payment.NewReference(1, "ABCDEF12"),
		Amount:    money.FromCents(10000),
		Status:    payment.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) WithStatus(s payment.Status) *PaymentBuilder {
	p.Status = s
	return p
}

func (p *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	return payment.NewPayment(p.BookingID, p.Reference, p.Amount, p.CreatedAt)
}

func (p *PaymentBuilder) BuildInfra() sqlc.Payments {
	row := sqlc.Payments{
		ID:               p.ID,
		BookingID:        p.BookingID,
		BookingReference: p.Reference.String(),
		AmountCents:      p.Amount.Cents(),
		Status:           p.Status.String(),
		CreatedAt:        pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: p.UpdatedAt, Valid: true},
	}
	if p.TransactionID != nil {
		row.TransactionID = pgtype.Text{String: *p.TransactionID, Valid: true}
	}
	return row
}

func (p *PaymentBuilder) BuildSnapshot() shared.PaymentSnapshot {
	return shared.PaymentSnapshot{
		ID:               p.ID,
		BookingID:        p.BookingID,
		BookingReference: p.Reference.String(),
		TransactionID:    p.TransactionID,
		AmountCents:      p.Amount.Cents(),
		Status:           p.Status.String(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (p *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:               p.ID,
		BookingID:        p.BookingID,
		BookingReference: p.Reference.String(),
		TransactionID:    p.TransactionID,
		AmountCents:      p.Amount.Cents(),
		Status:           p.Status.String(),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
