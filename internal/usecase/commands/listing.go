package commands

import (
	"context"

	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CreateListingRequest struct {
	Title              string
	Description        string
	Location           string
	PricePerNightCents int64
	MaxGuests          int
}

// ListingChanges leaves a field untouched when it is nil.
type ListingChanges struct {
	Title              *string
	Description        *string
	Location           *string
	PricePerNightCents *int64
	MaxGuests          *int
}

type ListingCommands interface {
	Create(ctx context.Context, req CreateListingRequest) (int64, error)
	Update(ctx context.Context, id int64, changes ListingChanges) error
	Delete(ctx context.Context, id int64) error
}

type listingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingUseCase(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *listingUseCaseImpl) Create(ctx context.Context, req CreateListingRequest) (int64, error) {
	l, err := listing.NewListing(listing.Attributes{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: money.FromCents(req.PricePerNightCents),
		MaxGuests:     req.MaxGuests,
	}, uc.clock.Now())
	if err != nil {
		return 0, invalid(err)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Listings().Create(ctx, tx.DB(), l)
		id = created
		return cerr
	})
	return id, err
}

func (uc *listingUseCaseImpl) Update(ctx context.Context, id int64, changes ListingChanges) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ListingByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrListingNotFound)
		}

		merged := CreateListingRequest{
			Title:              snap.Title,
			Description:        snap.Description,
			Location:           snap.Location,
			PricePerNightCents: snap.PricePerNightCents,
			MaxGuests:          snap.MaxGuests,
		}
		if err := copier.CopyWithOption(&merged, &changes, copier.Option{IgnoreEmpty: true}); err != nil {
			return errs.Wrap(err, "merge listing changes")
		}

		l := snap.ToDomain()
		if err := l.Update(listing.Attributes{
			Title:         merged.Title,
			Description:   merged.Description,
			Location:      merged.Location,
			PricePerNight: money.FromCents(merged.PricePerNightCents),
			MaxGuests:     merged.MaxGuests,
		}, uc.clock.Now()); err != nil {
			return invalid(err)
		}
		return notFoundAs(tx.Listings().Update(ctx, tx.DB(), l), ErrListingNotFound)
	})
}

func (uc *listingUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Listings().Delete(ctx, tx.DB(), id), ErrListingNotFound)
	})
}
