package listing

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
)

const (
	MaxTitleLength    = 200
	MaxLocationLength = 200
)

var (
	ErrTitleRequired       = errs.New("title is required")
	ErrTitleTooLong        = errs.New("title exceeds maximum length")
	ErrDescriptionRequired = errs.New("description is required")
	ErrLocationRequired    = errs.New("location is required")
	ErrLocationTooLong     = errs.New("location exceeds maximum length")
	ErrTitleInvalid        = errs.New("title must be a single line without control characters")
	ErrLocationInvalid     = errs.New("location must be a single line without control characters")
	ErrInvalidMaxGuests    = errs.New("max guests must be at least 1")
)

type Listing struct {
	id            int64
	title         string
	description   string
	location      string
	pricePerNight money.Money
	maxGuests     int
	createdAt     time.Time
	updatedAt     time.Time
}

type Attributes struct {
	Title         string
	Description   string
	Location      string
	PricePerNight money.Money
	MaxGuests     int
}

func NewListing(attrs Attributes, now time.Time) (*Listing, error) {
	l := &Listing{createdAt: now}
	if err := l.apply(attrs, now); err != nil {
		return nil, err
	}
	return l, nil
}

func ReconstructListing(id int64, attrs Attributes, createdAt, updatedAt time.Time) *Listing {
	return &Listing{
		id:            id,
		title:         attrs.Title,
		description:   attrs.Description,
		location:      attrs.Location,
		pricePerNight: attrs.PricePerNight,
		maxGuests:     attrs.MaxGuests,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces every mutable attribute after validating them together.
func (l *Listing) Update(attrs Attributes, now time.Time) error {
	return l.apply(attrs, now)
}

func (l *Listing) apply(attrs Attributes, now time.Time) error {
	title := strings.TrimSpace(attrs.Title)
	switch {
	case title == "":
		return ErrTitleRequired
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return ErrTitleTooLong
	case hasControl(title):
		return ErrTitleInvalid
	}

	description := strings.TrimSpace(attrs.Description)
	if description == "" {
		return ErrDescriptionRequired
	}

	location := strings.TrimSpace(attrs.Location)
	switch {
	case location == "":
		return ErrLocationRequired
	case utf8.RuneCountInString(location) > MaxLocationLength:
		return ErrLocationTooLong
	case hasControl(location):
		return ErrLocationInvalid
	}

	if attrs.PricePerNight.Cents() < 0 {
		return money.ErrNegativeAmount
	}
	if attrs.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}

	l.title = title
	l.description = description
	l.location = location
	l.pricePerNight = attrs.PricePerNight
	l.maxGuests = attrs.MaxGuests
	l.updatedAt = now
	return nil
}

// title and location end up in email subjects and headers
func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

func (l *Listing) ID() int64                  { return l.id }
func (l *Listing) Title() string              { return l.title }
func (l *Listing) Description() string        { return l.description }
func (l *Listing) Location() string           { return l.location }
func (l *Listing) PricePerNight() money.Money { return l.pricePerNight }
func (l *Listing) MaxGuests() int             { return l.maxGuests }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time       { return l.updatedAt }

func (l *Listing) Attributes() Attributes {
	return Attributes{
		Title:         l.title,
		Description:   l.description,
		Location:      l.location,
		PricePerNight: l.pricePerNight,
		MaxGuests:     l.maxGuests,
	}
}
