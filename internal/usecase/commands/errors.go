package commands

import (
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrListingNotFound         = errs.ErrListingNotFound
	ErrBookingNotFound         = errs.ErrBookingNotFound
	ErrBookingAlreadyConfirmed = errs.ErrBookingAlreadyConfirmed
	ErrPaymentNotFound         = errs.ErrPaymentNotFound
	ErrPaymentAlreadyCompleted = errs.ErrPaymentAlreadyCompleted
	ErrReferenceExhausted      = errs.ErrReferenceExhausted
	ErrReviewNotFound          = errs.ErrReviewNotFound
)

// notFoundAs swaps a NotFound repository error for the use-case sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

// invalid keeps the domain error identity and adds ErrDomainValidation.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
