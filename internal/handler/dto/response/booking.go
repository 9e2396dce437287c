package response

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              int64     `json:"id"`
	ListingID       int64     `json:"listing"`
	ListingTitle    string    `json:"listing_title,omitempty"`
	ListingLocation string    `json:"listing_location,omitempty"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalPrice      string    `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		ListingID:       v.ListingID,
		ListingTitle:    v.ListingTitle,
		ListingLocation: v.ListingLocation,
		GuestName:       v.GuestName,
		GuestEmail:      v.GuestEmail,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		TotalPrice:      money.FromCents(v.TotalPriceCents).String(),
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

// PaymentSummary carries either CheckoutURL or Error, never both.
type PaymentSummary struct {
	Status           string `json:"status"`
	BookingReference string `json:"booking_reference"`
	Amount           string `json:"amount"`
	CheckoutURL      string `json:"checkout_url,omitempty"`
	Error            string `json:"error,omitempty"`
}

func FromPaymentInitiation(p *commands.PaymentInitiation) *PaymentSummary {
	return &PaymentSummary{
		Status:           p.Status.String(),
		BookingReference: p.BookingReference.String(),
		Amount:           p.Amount.String(),
		CheckoutURL:      p.CheckoutURL,
		Error:            p.Error,
	}
}

type CreateBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
	Payment *PaymentSummary  `json:"payment"`
}
