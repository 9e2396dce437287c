package booking

import (
	"time"

	"travel-booking/internal/domain/money"
)

type Booking struct {
	id         int64
	listingID  int64
	guestName  GuestName
	guestEmail GuestEmail
	period     StayPeriod
	totalPrice money.Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

type Details struct {
	ListingID  int64
	GuestName  string
	GuestEmail string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice money.Money
}

// NewBooking validates the request and returns a Pending booking.
func NewBooking(d Details, now time.Time) (*Booking, error) {
	b := &Booking{status: StatusPending, createdAt: now}
	if err := b.apply(d, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBooking(id int64, d Details, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:         id,
		listingID:  d.ListingID,
		guestName:  GuestName{value: d.GuestName},
		guestEmail: GuestEmail{value: d.GuestEmail},
		period:     StayPeriod{start: truncateDate(d.StartDate), end: truncateDate(d.EndDate)},
		totalPrice: d.TotalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Update re-validates every field; the listing cannot be moved.
func (b *Booking) Update(d Details, status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	d.ListingID = b.listingID
	if err := b.apply(d, now); err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *Booking) apply(d Details, now time.Time) error {
	if d.ListingID <= 0 {
		return ErrMissingListing
	}
	name, err := NewGuestName(d.GuestName)
	if err != nil {
		return err
	}
	email, err := NewGuestEmail(d.GuestEmail)
	if err != nil {
		return err
	}
	period, err := NewStayPeriod(d.StartDate, d.EndDate)
	if err != nil {
		return err
	}
	if d.TotalPrice.Cents() < 0 {
		return money.ErrNegativeAmount
	}

	b.listingID = d.ListingID
	b.guestName = name
	b.guestEmail = email
	b.period = period
	b.totalPrice = d.TotalPrice
	b.updatedAt = now
	return nil
}

func (b *Booking) Confirm(now time.Time) {
	b.status = StatusConfirmed
	b.updatedAt = now
}

func (b *Booking) ID() int64               { return b.id }
func (b *Booking) ListingID() int64        { return b.listingID }
func (b *Booking) GuestName() GuestName    { return b.guestName }
func (b *Booking) GuestEmail() GuestEmail  { return b.guestEmail }
func (b *Booking) Period() StayPeriod      { return b.period }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
