package review

import "travel-booking/internal/pkg/errs"

var (
	ErrInvalidRating        = errs.New("rating must be between 1 and 5")
	ErrCommentTooLong       = errs.New("comment exceeds maximum length")
	ErrReviewerNameRequired = errs.New("reviewer name is required")
	ErrReviewerNameTooLong  = errs.New("reviewer name exceeds maximum length")
	ErrMissingListing       = errs.New("review requires a listing")
)
