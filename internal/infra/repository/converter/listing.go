package converter

import (
	"travel-booking/internal/domain/listing"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		Title:              l.Title(),
		Description:        l.Description(),
		Location:           l.Location(),
		PricePerNightCents: l.PricePerNight().Cents(),
		MaxGuests:          pgconv.IntToInt32(l.MaxGuests()),
		CreatedAt:          pgconv.TimeToPgtype(l.CreatedAt()),
	}
}

func ListingToUpdateParams(l *listing.Listing) sqlc.UpdateListingParams {
	return sqlc.UpdateListingParams{
		ID:                 l.ID(),
		Title:              l.Title(),
		Description:        l.Description(),
		Location:           l.Location(),
		PricePerNightCents: l.PricePerNight().Cents(),
		MaxGuests:          pgconv.IntToInt32(l.MaxGuests()),
		UpdatedAt:          pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}
