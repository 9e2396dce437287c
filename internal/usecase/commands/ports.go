package commands

import (
	"context"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
)

// ProviderStatusSuccess is the only verify status treated as a paid transaction.
const ProviderStatusSuccess = "success"

type PaymentRequest struct {
	Amount      money.Money
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	Reference   payment.Reference
	CallbackURL string
}

// GatewayResult carries provider failures as data; gateways never return Go errors.
type GatewayResult struct {
	Success        bool
	CheckoutURL    string
	ProviderStatus string // lower-cased, verify only
	TransactionID  string
	Payload        map[string]any
	Error          string
	// Unavailable marks transport errors, timeouts and 5xx answers.
	Unavailable bool
}

func (r GatewayResult) IsPaid() bool {
	return r.Success && r.ProviderStatus == ProviderStatusSuccess
}

type PaymentGateway interface {
	Initiate(ctx context.Context, req PaymentRequest) GatewayResult
	Verify(ctx context.Context, ref payment.Reference) GatewayResult
}

// ConfirmationNotifier schedules the guest notification for a confirmed booking.
type ConfirmationNotifier interface {
	BookingConfirmed(ctx context.Context, bookingID int64) error
}
