package api

import (
	"net/http"
	"strconv"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const verifyPath = "/api/payments/verify"

type BookingHandler struct {
	payments    commands.BookingPaymentCommands
	cmds        commands.BookingCommands
	q           queries.BookingQueries
	callbackURL string
}

func NewBookingHandler(payments commands.BookingPaymentCommands, cmds commands.BookingCommands, q queries.BookingQueries, cfg config.PaymentConfig) *BookingHandler {
	return &BookingHandler{payments: payments, cmds: cmds, q: q, callbackURL: cfg.CallbackURL}
}

// @Summary Create booking
// @Description Creates the booking and initiates its payment. The booking is kept even when initiation fails; the payment object then carries the error.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	result, err := h.payments.CreateBookingWithPayment(c.Request.Context(), req.ToCommand(), h.callbackFor(c))
	if err != nil {
		abortWithUseCaseError(c, err, "create booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.BookingID)
	if err != nil {
		abortWithUseCaseError(c, err, "load booking failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Booking: resdto.FromBookingView(view),
		Payment: resdto.FromPaymentInitiation(&result.Payment),
	})
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c, id)
}

// @Summary List bookings
// @Description Newest first, optionally filtered by listing
// @Tags bookings
// @Produce json
// @Param listing_id query int false "Listing ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var filters queries.BookingFilters
	if v := c.Query("listing_id"); v != "" {
		listingID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing_id", nil)
			return
		}
		filters.ListingID = &listingID
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err, "list bookings failed")
		return
	}
	c.JSON(http.StatusOK, withCursor(gin.H{"bookings": resdto.FromBookingList(items)}, next))
}

// @Summary Replace booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.ReplaceBookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.ReplaceBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	h.update(c, id, req.ToChanges())
}

// @Summary Patch booking
// @Description The payment amount is not recalculated
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.PatchBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.PatchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	h.update(c, id, req.ToChanges())
}

func (h *BookingHandler) update(c *gin.Context, id int64, changes commands.BookingChanges) {
	if err := h.cmds.Update(c.Request.Context(), id, changes); err != nil {
		abortWithUseCaseError(c, err, "update booking failed")
		return
	}
	h.respond(c, id)
}

// @Summary Delete booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "delete booking failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Initiate payment
// @Description Starts (or restarts) the checkout for an existing booking, reusing its booking reference
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.InitiatePaymentResponse
// @Failure 400 {object} resdto.StatusError
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/initiate-payment [post]
func (h *BookingHandler) InitiatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.payments.InitiatePayment(c.Request.Context(), id, h.callbackFor(c))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPaymentAlreadyCompleted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment already completed for this booking", nil)
		case errs.Is(err, errs.ErrBookingAlreadyConfirmed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is already confirmed", nil)
		default:
			abortWithUseCaseError(c, err, "initiate payment failed")
		}
		return
	}
	if !p.Succeeded() {
		c.JSON(http.StatusBadRequest, resdto.NewStatusError(p.Error))
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitiated(p))
}

func (h *BookingHandler) respond(c *gin.Context, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "load booking failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// callbackFor prefers the configured callback and otherwise points the
// provider back at this server's verification endpoint.
func (h *BookingHandler) callbackFor(c *gin.Context) string {
	if h.callbackURL != "" {
		return h.callbackURL
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host + verifyPath
}
