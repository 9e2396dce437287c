package response

import (
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/usecase/queries"
)

type ListingResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night"`
	MaxGuests     int32     `json:"max_guests"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	return &ListingResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Location:      v.Location,
		PricePerNight: money.FromCents(v.PricePerNightCents).String(),
		MaxGuests:     v.MaxGuests,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromListingList(items []*queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(items))
	for i, it := range items {
		res[i] = FromListingView(it)
	}
	return res
}
