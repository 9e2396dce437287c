package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use-case sentinels onto HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrListingNotFound):
		httperr.NotFound(c, err, "Listing")
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.NotFound(c, err, "Booking")
	case errs.Is(err, errs.ErrPaymentNotFound):
		httperr.NotFound(c, err, "Payment")
	case errs.Is(err, errs.ErrReviewNotFound):
		httperr.NotFound(c, err, "Review")
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	case errs.Is(err, errs.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	default:
		slog.Error(fallback, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("id must be positive")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func withCursor(resp gin.H, next *queries.Cursor) gin.H {
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
