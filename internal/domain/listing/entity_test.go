//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Seaside Cottage", l.Title())
		assert.Equal(t, "50.00", l.PricePerNight().String())
		assert.Equal(t, 4, l.MaxGuests())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ListingBuilder)
		errIs  error
	}{
		{"blank title", func(b *builder.ListingBuilder) { b.Title = " " }, listing.ErrTitleRequired},
		{"title too long", func(b *builder.ListingBuilder) { b.Title = strings.Repeat("t", listing.MaxTitleLength+1) }, listing.ErrTitleTooLong},
		{"blank description", func(b *builder.ListingBuilder) { b.Description = "" }, listing.ErrDescriptionRequired},
		{"blank location", func(b *builder.ListingBuilder) { b.Location = "" }, listing.ErrLocationRequired},
		{"location too long", func(b *builder.ListingBuilder) { b.Location = strings.Repeat("l", listing.MaxLocationLength+1) }, listing.ErrLocationTooLong},
		{"title with line break", func(b *builder.ListingBuilder) { b.Title = "Villa\r\nBcc: someone@example.net" }, listing.ErrTitleInvalid},
		{"location with control character", func(b *builder.ListingBuilder) { b.Location = "Addis\x00Ababa" }, listing.ErrLocationInvalid},
		{"negative price", func(b *builder.ListingBuilder) { b.PricePerNight = money.FromCents(-100) }, money.ErrNegativeAmount},
		{"zero guests", func(b *builder.ListingBuilder) { b.MaxGuests = 0 }, listing.ErrInvalidMaxGuests},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, l)
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("update validates before applying", func(t *testing.T) {
		created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l := listing.ReconstructListing(1, builder.NewListingBuilder().Attributes(), created, created)

		attrs := l.Attributes()
		attrs.MaxGuests = -1
		require.ErrorIs(t, l.Update(attrs, created.Add(time.Hour)), listing.ErrInvalidMaxGuests)
		assert.Equal(t, 4, l.MaxGuests())
		assert.Equal(t, created, l.UpdatedAt())

		attrs.MaxGuests = 6
		require.NoError(t, l.Update(attrs, created.Add(time.Hour)))
		assert.Equal(t, 6, l.MaxGuests())
		assert.Equal(t, created, l.CreatedAt())
	})
}
