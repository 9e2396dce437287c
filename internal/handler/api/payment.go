package api

import (
	"net/http"
	"strings"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingTxRef = errs.New("tx_ref parameter is required")

type PaymentHandler struct {
	cmds commands.BookingPaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.BookingPaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Verify payment
// @Description Polled by clients (GET) and called back by the provider (POST). tx_ref is read from the query string, then from the body.
// @Tags payments
// @Accept json
// @Produce json
// @Param tx_ref query string false "Booking reference"
// @Param request body reqdto.VerifyPaymentRequest false "Provider callback"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 400 {object} resdto.VerifyPaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /payments/verify [get]
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	txRef := strings.TrimSpace(c.Query("tx_ref"))
	if txRef == "" && c.Request.Method == http.MethodPost {
		var body reqdto.VerifyPaymentRequest
		// ShouldBind picks JSON or form decoding from Content-Type
		if err := c.ShouldBind(&body); err == nil {
			txRef = strings.TrimSpace(body.TxRef)
		}
	}
	if txRef == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingTxRef, errMissingTxRef.Error(), nil)
		return
	}

	outcome, err := h.cmds.VerifyPayment(c.Request.Context(), txRef)
	if err != nil {
		abortWithUseCaseError(c, err, "verify payment failed")
		return
	}
	status := http.StatusOK
	if outcome.Status == commands.VerificationError {
		status = http.StatusBadRequest
	}
	c.JSON(status, resdto.FromVerification(outcome))
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /payments/{reference} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	view, err := h.q.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		abortWithUseCaseError(c, err, "load payment failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}
