package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds     commands.ListingCommands
	q        queries.ListingQueries
	bookings queries.BookingQueries
	reviews  queries.ReviewQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries, bookings queries.BookingQueries, reviews queries.ReviewQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, bookings: bookings, reviews: reviews}
}

// @Summary Create listing
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "create listing failed")
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary List listings
// @Description Newest first with keyset pagination
// @Tags listings
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list listings failed")
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"listings": resdto.FromListingList(items)}, next))
}

// @Summary Replace listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.CreateListingRequest true "Listing"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [put]
func (h *ListingHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	h.update(c, id, req.ToChanges())
}

// @Summary Patch listing
// @Tags listings
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param request body reqdto.PatchListingRequest true "Fields to change"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [patch]
func (h *ListingHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.PatchListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	h.update(c, id, req.ToChanges())
}

func (h *ListingHandler) update(c *gin.Context, id int64, changes commands.ListingChanges) {
	if err := h.cmds.Update(c.Request.Context(), id, changes); err != nil {
		abortWithUseCaseError(c, err, "update listing failed")
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete listing
// @Description Also removes the listing's bookings, payments and reviews
// @Tags listings
// @Param id path int true "Listing ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "delete listing failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List listing bookings
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/bookings [get]
func (h *ListingHandler) ListBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.bookings.ListByListing(c.Request.Context(), id, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list listing bookings failed")
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"bookings": resdto.FromBookingList(items)}, next))
}

// @Summary List listing reviews
// @Tags listings
// @Produce json
// @Param id path int true "Listing ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/reviews [get]
func (h *ListingHandler) ListReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.reviews.ListByListing(c.Request.Context(), id, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list listing reviews failed")
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"reviews": resdto.FromReviewList(items)}, next))
}

func (h *ListingHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "load listing failed")
		return
	}
	c.JSON(status, resdto.FromListingView(view))
}
