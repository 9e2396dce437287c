package request

import (
	"travel-booking/internal/usecase/commands"
)

type CreateListingRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Description   string  `json:"description" binding:"required"`
	Location      string  `json:"location" binding:"required,max=200"`
	PricePerNight *Amount `json:"price_per_night" binding:"required"`
	MaxGuests     int     `json:"max_guests" binding:"required,min=1"`
}

func (r *CreateListingRequest) ToCommand() commands.CreateListingRequest {
	return commands.CreateListingRequest{
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.Location,
		PricePerNightCents: r.PricePerNight.Cents(),
		MaxGuests:          r.MaxGuests,
	}
}

// ToChanges turns a full replacement into a change set touching every field.
func (r *CreateListingRequest) ToChanges() commands.ListingChanges {
	c := r.ToCommand()
	return commands.ListingChanges{
		Title:              &c.Title,
		Description:        &c.Description,
		Location:           &c.Location,
		PricePerNightCents: &c.PricePerNightCents,
		MaxGuests:          &c.MaxGuests,
	}
}

type PatchListingRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=200"`
	Description   *string `json:"description"`
	Location      *string `json:"location" binding:"omitempty,max=200"`
	PricePerNight *Amount `json:"price_per_night"`
	MaxGuests     *int    `json:"max_guests" binding:"omitempty,min=1"`
}

func (r *PatchListingRequest) ToChanges() commands.ListingChanges {
	return commands.ListingChanges{
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.Location,
		PricePerNightCents: amountCents(r.PricePerNight),
		MaxGuests:          r.MaxGuests,
	}
}
