package queries

import (
	"time"

	"travel-booking/internal/pkg/errs"
)

var (
	ErrInvalidCursor   = errs.ErrInvalidCursor
	ErrListingNotFound = errs.ErrListingNotFound
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrReviewNotFound  = errs.ErrReviewNotFound
)

// ListingView represents read-optimized listing data
type ListingView struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	MaxGuests          int32     `json:"max_guests"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BookingView carries the listing title and location only on single-row reads.
type BookingView struct {
	ID              int64     `json:"id"`
	ListingID       int64     `json:"listing_id"`
	ListingTitle    string    `json:"listing_title,omitempty"`
	ListingLocation string    `json:"listing_location,omitempty"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PaymentView represents read-optimized payment data
type PaymentView struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	TransactionID    *string   `json:"transaction_id,omitempty"`
	AmountCents      int64     `json:"amount_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID           int64     `json:"id"`
	ListingID    int64     `json:"listing_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
