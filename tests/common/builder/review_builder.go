//go:build unit || e2e || integration

package builder

import (
	"time"

	domreview "travel-booking/internal/domain/review"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID           int64
	ListingID    int64
	ReviewerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &ReviewBuilder{
		ID:           1,
		ListingID:    1,
		ReviewerName: "Alice Reviewer",
		Rating:       5,
		Comment:      "Excellent stay!",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithListingID(id int64) *ReviewBuilder {
	r.ListingID = id
	return r
}

func (r *ReviewBuilder) WithReviewerName(name string) *ReviewBuilder {
	r.ReviewerName = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ListingID, r.ReviewerName, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:           r.ID,
		ListingID:    r.ListingID,
		ReviewerName: r.ReviewerName,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		CreatedAt:    pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           r.ID,
		ListingID:    r.ListingID,
		ReviewerName: r.ReviewerName,
		Rating:       int32(r.Rating),
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildRequestBody() map[string]any {
	return map[string]any{
		"listing":       r.ListingID,
		"reviewer_name": r.ReviewerName,
		"rating":        r.Rating,
		"comment":       r.Comment,
	}
}
