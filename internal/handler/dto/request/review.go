package request

import (
	"travel-booking/internal/usecase/commands"
)

type CreateReviewRequest struct {
	ListingID    int64  `json:"listing" binding:"required"`
	ReviewerName string `json:"reviewer_name" binding:"required,max=150"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ListingID:    r.ListingID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
	}
}

type UpdateReviewRequest struct {
	ReviewerName *string `json:"reviewer_name" binding:"omitempty,max=150"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment      *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToChanges() commands.ReviewChanges {
	return commands.ReviewChanges{
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
	}
}
