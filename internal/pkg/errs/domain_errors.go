package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")

	// Booking errors
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyConfirmed = errors.New("booking is already confirmed")

	// Payment errors
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed for this booking")
	ErrReferenceExhausted      = errors.New("could not allocate a unique booking reference")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
	ErrInvalidCursor    = errors.New("invalid cursor")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
