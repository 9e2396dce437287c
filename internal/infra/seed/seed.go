// Package seed fills a database with demo listings, bookings and reviews.
package seed

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/review"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

const (
	stayNights    = 2
	reviewComment = "Great place. Would stay again!"
)

type Options struct {
	Listings           int
	BookingsPerListing int
	ReviewsPerListing  int
	Flush              bool
}

type ListingPlan struct {
	Attributes listing.Attributes
	Bookings   []BookingPlan
	Reviews    []ReviewPlan
}

type BookingPlan struct {
	GuestName  string
	GuestEmail string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice money.Money
	Confirmed  bool
}

type ReviewPlan struct {
	ReviewerName string
	Rating       int
	Comment      string
}

type Result struct {
	Listings int
	Bookings int
	Reviews  int
}

// Plan lays out the rows Run inserts. Stay dates start from today's date.
func Plan(opts Options, today time.Time) ([]ListingPlan, error) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	plans := make([]ListingPlan, 0, opts.Listings)
	for i := 1; i <= opts.Listings; i++ {
		price := money.FromCents(int64(5000 + 1000*i))
		lp := ListingPlan{
			Attributes: listing.Attributes{
				Title:         fmt.Sprintf("Cozy Stay #%d", i),
				Description:   fmt.Sprintf("A comfortable place to stay in City %d.", i),
				Location:      fmt.Sprintf("City %d", i),
				PricePerNight: price,
				MaxGuests:     2 + i%4,
			},
		}

		for b := 1; b <= opts.BookingsPerListing; b++ {
			start := today.AddDate(0, 0, i+(b-1)*3)
			total, err := price.Mul(stayNights)
			if err != nil {
				return nil, errs.Wrapf(err, "listing %d total", i)
			}
			lp.Bookings = append(lp.Bookings, BookingPlan{
				GuestName:  fmt.Sprintf("Guest %d-%d", i, b),
				GuestEmail: fmt.Sprintf("guest%d%d@example.com", i, b),
				StartDate:  start,
				EndDate:    start.AddDate(0, 0, stayNights),
				TotalPrice: total,
				Confirmed:  b%2 == 1,
			})
		}

		for r := 1; r <= opts.ReviewsPerListing; r++ {
			lp.Reviews = append(lp.Reviews, ReviewPlan{
				ReviewerName: fmt.Sprintf("Reviewer %d-%d", i, r),
				Rating:       3 + r%3,
				Comment:      reviewComment,
			})
		}
		plans = append(plans, lp)
	}
	return plans, nil
}

type flusher interface {
	DeleteAllReviews(ctx context.Context, db sqlc.DBTX) error
	DeleteAllBookings(ctx context.Context, db sqlc.DBTX) error
	DeleteAllListings(ctx context.Context, db sqlc.DBTX) error
}

type Seeder struct {
	uow     shared.UnitOfWork
	flusher flusher
}

func NewSeeder(uow shared.UnitOfWork, q flusher) *Seeder {
	return &Seeder{uow: uow, flusher: q}
}

// Run inserts the plan in one transaction through the regular repositories.
func (s *Seeder) Run(ctx context.Context, plans []ListingPlan, flush bool, now time.Time) (Result, error) {
	var res Result
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = Result{}
		if flush {
			if err := s.flush(ctx, tx.DB()); err != nil {
				return err
			}
		}

		for _, lp := range plans {
			l, err := listing.NewListing(lp.Attributes, now)
			if err != nil {
				return errs.Wrapf(err, "seed listing %q", lp.Attributes.Title)
			}
			listingID, err := tx.Listings().Create(ctx, tx.DB(), l)
			if err != nil {
				return err
			}
			res.Listings++

			for _, bp := range lp.Bookings {
				b, err := booking.NewBooking(booking.Details{
					ListingID:  listingID,
					GuestName:  bp.GuestName,
					GuestEmail: bp.GuestEmail,
					StartDate:  bp.StartDate,
					EndDate:    bp.EndDate,
					TotalPrice: bp.TotalPrice,
				}, now)
				if err != nil {
					return errs.Wrapf(err, "seed booking for %q", bp.GuestName)
				}
				if bp.Confirmed {
					b.Confirm(now)
				}
				if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
					return err
				}
				res.Bookings++
			}

			for _, rp := range lp.Reviews {
				rev, err := review.NewReview(listingID, rp.ReviewerName, rp.Rating, rp.Comment, now)
				if err != nil {
					return errs.Wrapf(err, "seed review by %q", rp.ReviewerName)
				}
				if _, err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
					return err
				}
				res.Reviews++
			}
		}
		return nil
	})
	return res, err
}

// Payments go with their bookings via ON DELETE CASCADE.
func (s *Seeder) flush(ctx context.Context, db sqlc.DBTX) error {
	if err := s.flusher.DeleteAllReviews(ctx, db); err != nil {
		return errs.Wrap(err, "flush reviews")
	}
	if err := s.flusher.DeleteAllBookings(ctx, db); err != nil {
		return errs.Wrap(err, "flush bookings")
	}
	if err := s.flusher.DeleteAllListings(ctx, db); err != nil {
		return errs.Wrap(err, "flush listings")
	}
	return nil
}
