package request

import (
	"travel-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ListingID  int64   `json:"listing" binding:"required"`
	GuestName  string  `json:"guest_name" binding:"required,max=150"`
	GuestEmail string  `json:"guest_email" binding:"required,email"`
	StartDate  *Date   `json:"start_date" binding:"required"`
	EndDate    *Date   `json:"end_date" binding:"required"`
	TotalPrice *Amount `json:"total_price" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:  r.ListingID,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		StartDate:  r.StartDate.Time,
		EndDate:    r.EndDate.Time,
		TotalPrice: r.TotalPrice.Money,
	}
}

// ReplaceBookingRequest is the PUT body; the listing of a booking cannot change.
type ReplaceBookingRequest struct {
	GuestName  string  `json:"guest_name" binding:"required,max=150"`
	GuestEmail string  `json:"guest_email" binding:"required,email"`
	StartDate  *Date   `json:"start_date" binding:"required"`
	EndDate    *Date   `json:"end_date" binding:"required"`
	TotalPrice *Amount `json:"total_price" binding:"required"`
	Status     string  `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

func (r *ReplaceBookingRequest) ToChanges() commands.BookingChanges {
	return commands.BookingChanges{
		GuestName:       &r.GuestName,
		GuestEmail:      &r.GuestEmail,
		StartDate:       dateTime(r.StartDate),
		EndDate:         dateTime(r.EndDate),
		TotalPriceCents: amountCents(r.TotalPrice),
		Status:          &r.Status,
	}
}

type PatchBookingRequest struct {
	GuestName  *string `json:"guest_name" binding:"omitempty,max=150"`
	GuestEmail *string `json:"guest_email" binding:"omitempty,email"`
	StartDate  *Date   `json:"start_date"`
	EndDate    *Date   `json:"end_date"`
	TotalPrice *Amount `json:"total_price"`
	Status     *string `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}

func (r *PatchBookingRequest) ToChanges() commands.BookingChanges {
	return commands.BookingChanges{
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		StartDate:       dateTime(r.StartDate),
		EndDate:         dateTime(r.EndDate),
		TotalPriceCents: amountCents(r.TotalPrice),
		Status:          r.Status,
	}
}
