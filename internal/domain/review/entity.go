package review

import (
	"time"
)

type Review struct {
	id           int64
	listingID    int64
	reviewerName ReviewerName
	rating       Rating
	comment      Comment
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReview(listingID int64, reviewerName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if listingID <= 0 {
		return nil, ErrMissingListing
	}
	r := &Review{listingID: listingID, createdAt: now}
	if err := r.Revise(reviewerName, ratingValue, commentText, now); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructReview(id, listingID int64, reviewerName string, rating int, comment string, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		listingID:    listingID,
		reviewerName: ReviewerName{value: reviewerName},
		rating:       Rating{value: rating},
		comment:      Comment{text: comment},
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Review) Revise(reviewerName string, ratingValue int, commentText string, now time.Time) error {
	name, err := NewReviewerName(reviewerName)
	if err != nil {
		return err
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return err
	}
	r.reviewerName = name
	r.rating = rating
	r.comment = comment
	r.updatedAt = now
	return nil
}

func (r *Review) ID() int64                  { return r.id }
func (r *Review) ListingID() int64           { return r.listingID }
func (r *Review) ReviewerName() ReviewerName { return r.reviewerName }
func (r *Review) Rating() Rating             { return r.rating }
func (r *Review) Comment() Comment           { return r.comment }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
func (r *Review) UpdatedAt() time.Time       { return r.updatedAt }
