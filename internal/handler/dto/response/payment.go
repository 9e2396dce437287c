package response

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

type PaymentResponse struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking"`
	BookingReference string    `json:"booking_reference"`
	TransactionID    *string   `json:"transaction_id"`
	Amount           string    `json:"amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:               v.ID,
		BookingID:        v.BookingID,
		BookingReference: v.BookingReference,
		TransactionID:    v.TransactionID,
		Amount:           money.FromCents(v.AmountCents).String(),
		Status:           v.Status,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

type InitiatedPayment struct {
	BookingReference string `json:"booking_reference"`
	Amount           string `json:"amount"`
	CheckoutURL      string `json:"checkout_url"`
}

type InitiatePaymentResponse struct {
	Status  string            `json:"status"`
	Payment *InitiatedPayment `json:"payment"`
}

func FromInitiated(p *commands.PaymentInitiation) *InitiatePaymentResponse {
	return &InitiatePaymentResponse{
		Status: "success",
		Payment: &InitiatedPayment{
			BookingReference: p.BookingReference.String(),
			Amount:           p.Amount.String(),
			CheckoutURL:      p.CheckoutURL,
		},
	}
}

// StatusError is the {"status":"error","error":...} body used by the payment
// endpoints when the provider could not be used.
type StatusError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func NewStatusError(msg string) *StatusError {
	return &StatusError{Status: "error", Error: msg}
}

type VerifyPaymentResponse struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status,omitempty"`
	BookingID     int64  `json:"booking_id,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

func FromVerification(o *commands.VerificationOutcome) *VerifyPaymentResponse {
	res := &VerifyPaymentResponse{
		Status:  string(o.Status),
		Message: o.Message,
		Error:   o.Error,
	}
	if o.Status != commands.VerificationError {
		res.PaymentStatus = o.PaymentStatus.String()
	}
	if o.Status == commands.VerificationSuccess {
		res.BookingID = o.BookingID
	}
	return res
}
