package shared

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/review"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations
type ListingSnapshot struct {
	ID                 int64
	Title              string
	Description        string
	Location           string
	PricePerNightCents int64
	MaxGuests          int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (s *ListingSnapshot) ToDomain() *listing.Listing {
	return listing.ReconstructListing(s.ID, listing.Attributes{
		Title:         s.Title,
		Description:   s.Description,
		Location:      s.Location,
		PricePerNight: money.FromCents(s.PricePerNightCents),
		MaxGuests:     s.MaxGuests,
	}, s.CreatedAt, s.UpdatedAt)
}

type BookingSnapshot struct {
	ID              int64
	ListingID       int64
	GuestName       string
	GuestEmail      string
	StartDate       time.Time
	EndDate         time.Time
	TotalPriceCents int64
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(s.ID, booking.Details{
		ListingID:  s.ListingID,
		GuestName:  s.GuestName,
		GuestEmail: s.GuestEmail,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		TotalPrice: money.FromCents(s.TotalPriceCents),
	}, booking.Status(s.Status), s.CreatedAt, s.UpdatedAt)
}

type PaymentSnapshot struct {
	ID               int64
	BookingID        int64
	BookingReference string
	TransactionID    *string
	AmountCents      int64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s *PaymentSnapshot) ToDomain() *payment.Payment {
	return payment.ReconstructPayment(
		s.ID,
		s.BookingID,
		payment.Reference(s.BookingReference),
		s.TransactionID,
		money.FromCents(s.AmountCents),
		payment.Status(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
	)
}

type ReviewSnapshot struct {
	ID           int64
	ListingID    int64
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *ReviewSnapshot) ToDomain() *review.Review {
	return review.ReconstructReview(s.ID, s.ListingID, s.ReviewerName, s.Rating, s.Comment, s.CreatedAt, s.UpdatedAt)
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}
