package converter

import (
	"travel-booking/internal/domain/review"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ListingID:    r.ListingID(),
		ReviewerName: r.ReviewerName().String(),
		Rating:       pgconv.IntToInt32(r.Rating().Value()),
		Comment:      r.Comment().String(),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:           r.ID(),
		ReviewerName: r.ReviewerName().String(),
		Rating:       pgconv.IntToInt32(r.Rating().Value()),
		Comment:      r.Comment().String(),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
