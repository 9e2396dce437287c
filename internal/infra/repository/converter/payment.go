package converter

import (
	"travel-booking/internal/domain/payment"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		BookingID:        p.BookingID(),
		BookingReference: p.Reference().String(),
		AmountCents:      p.Amount().Cents(),
		Status:           p.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func StatusesToStrings(statuses []payment.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
