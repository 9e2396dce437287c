//go:build unit || e2e || integration

package builder

import (
	"time"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ListingBuilder struct {
	ID            int64
	Title         string
	Description   string
	Location      string
	PricePerNight money.Money
	MaxGuests     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &ListingBuilder{
		ID:            1,
		Title:         "Seaside Cottage",
		Description:   "Two bedrooms a short walk from the beach",
		Location:      "Mombasa",
		PricePerNight: money.FromCents(5000),
		MaxGuests:     4,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) Attributes() listing.Attributes {
	return listing.Attributes{
		Title:         b.Title,
		Description:   b.Description,
		Location:      b.Location,
		PricePerNight: b.PricePerNight,
		MaxGuests:     b.MaxGuests,
	}
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	return listing.NewListing(b.Attributes(), b.CreatedAt)
}

func (b *ListingBuilder) BuildInfra() sqlc.Listings {
	return sqlc.Listings{
		ID:                 b.ID,
		Title:              b.Title,
		Description:        b.Description,
		Location:           b.Location,
		PricePerNightCents: b.PricePerNight.Cents(),
		MaxGuests:          int32(b.MaxGuests),
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:                 b.ID,
		Title:              b.Title,
		Description:        b.Description,
		Location:           b.Location,
		PricePerNightCents: b.PricePerNight.Cents(),
		MaxGuests:          int32(b.MaxGuests),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// BuildRequestBody is the JSON body accepted by POST and PUT /listings.
func (b *ListingBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"title":           b.Title,
		"description":     b.Description,
		"location":        b.Location,
		"price_per_night": b.PricePerNight.String(),
		"max_guests":      b.MaxGuests,
	}
}
