package response

import (
	"time"

	"travel-booking/internal/usecase/queries"
)

type ReviewResponse struct {
	ID           int64     `json:"id"`
	ListingID    int64     `json:"listing"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int32     `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           v.ID,
		ListingID:    v.ListingID,
		ReviewerName: v.ReviewerName,
		Rating:       v.Rating,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}
