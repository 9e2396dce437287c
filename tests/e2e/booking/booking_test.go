//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"travel-booking/internal/handler/dto/response"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL        = "/api/bookings"
	initiatePaymentURL = "/api/bookings/%d/initiate-payment"
	verifyURL          = "/api/payments/verify"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) createBooking(t *testing.T) response.CreateBookingResponse {
	t.Helper()

	listingID := dbtest.CreateTestListing(t, s.DB, "Lakeside Loft", 5000, 2)
	body := builder.NewBookingBuilder().WithListingID(listingID).BuildRequestBody()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateBookingResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotNil(t, created.Booking)
	require.NotNil(t, created.Payment)
	return created
}

// =============================================================================
// Booking with payment, then verification
// =============================================================================

func (s *BookingSuite) TestBookingPaymentFlow() {
	s.Run("Normal case: booking is confirmed after successful verification", func() {
		t := s.T()

		created := s.createBooking(t)
		ref := created.Payment.BookingReference

		assert.Equal(t, "PENDING", created.Booking.Status)
		assert.Equal(t, "PENDING", created.Payment.Status)
		assert.Equal(t, "100.00", created.Payment.Amount)
		assert.True(t, strings.HasPrefix(ref, fmt.Sprintf("BK-%d-", created.Booking.ID)), ref)
		assert.Equal(t, "https://checkout.example.test/"+ref, created.Payment.CheckoutURL)
		assert.Equal(t, []string{ref}, s.Provider.Initiated())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL+"?tx_ref="+url.QueryEscape(ref), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var verified response.VerifyPaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &verified)
		assert.Equal(t, response.VerifyPaymentResponse{
			Status:        "success",
			PaymentStatus: "COMPLETED",
			BookingID:     created.Booking.ID,
			Message:       "Payment verified successfully",
		}, verified)

		assert.Equal(t, "CONFIRMED", dbtest.BookingStatus(t, s.DB, created.Booking.ID))
		assert.Equal(t, "COMPLETED", dbtest.PaymentStatus(t, s.DB, ref))
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "booking.confirmed"))
	})

	s.Run("Normal case: repeated verification is idempotent", func() {
		t := s.T()

		created := s.createBooking(t)
		ref := created.Payment.BookingReference
		path := verifyURL + "?tx_ref=" + url.QueryEscape(ref)

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil).Code)

		form := url.Values{"tx_ref": {ref}}
		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, verifyURL, form)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var again response.VerifyPaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &again)
		assert.Equal(t, "success", again.Status)
		assert.Equal(t, "Payment already verified", again.Message)
		assert.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, "booking.confirmed"))
	})

	s.Run("Normal case: unpaid verification fails the payment only", func() {
		t := s.T()
		s.Provider.SetVerifyStatus("failed")

		created := s.createBooking(t)
		ref := created.Payment.BookingReference

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL+"?tx_ref="+url.QueryEscape(ref), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.VerifyPaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		assert.Equal(t, "failed", res.Status)
		assert.Equal(t, "FAILED", res.PaymentStatus)

		assert.Equal(t, "FAILED", dbtest.PaymentStatus(t, s.DB, ref))
		assert.Equal(t, "PENDING", dbtest.BookingStatus(t, s.DB, created.Booking.ID))
		assert.Zero(t, dbtest.CountNotificationJobs(t, s.DB, "booking.confirmed"))
	})

	s.Run("Error case: provider rejection keeps the booking", func() {
		t := s.T()
		s.Provider.RejectInitiation()

		created := s.createBooking(t)
		assert.Equal(t, "FAILED", created.Payment.Status)
		assert.Equal(t, "Invalid currency", created.Payment.Error)
		assert.Empty(t, created.Payment.CheckoutURL)
		assert.Equal(t, "PENDING", dbtest.BookingStatus(t, s.DB, created.Booking.ID))
	})

	s.Run("Error case: unknown tx_ref", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL+"?tx_ref=BK-999-DEADBEEF", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: missing tx_ref", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// Re-initiation
// =============================================================================

func (s *BookingSuite) TestInitiatePayment() {
	s.Run("Normal case: pending booking gets a fresh checkout", func() {
		t := s.T()

		created := s.createBooking(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(initiatePaymentURL, created.Booking.ID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.InitiatePaymentResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		assert.Equal(t, "success", res.Status)
		require.NotNil(t, res.Payment)
		assert.Equal(t, created.Payment.BookingReference, res.Payment.BookingReference)
		assert.Len(t, s.Provider.Initiated(), 2)
	})

	s.Run("Error case: completed payment cannot be initiated again", func() {
		t := s.T()

		created := s.createBooking(t)
		ref := created.Payment.BookingReference
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, verifyURL+"?tx_ref="+url.QueryEscape(ref), nil).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(initiatePaymentURL, created.Booking.ID), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: unknown booking", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(initiatePaymentURL, 424242), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Booking CRUD
// =============================================================================

func (s *BookingSuite) TestBookingCRUD() {
	s.Run("Normal case: patch then delete", func() {
		t := s.T()

		created := s.createBooking(t)
		itemURL := fmt.Sprintf("%s/%d", bookingsURL, created.Booking.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, itemURL, map[string]any{"guest_name": "John Roe"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var patched response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &patched)
		assert.Equal(t, "John Roe", patched.GuestName)
		assert.Equal(t, created.Booking.GuestEmail, patched.GuestEmail)

		require.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, s.Router, http.MethodDelete, itemURL, nil).Code)
		assert.Equal(t, http.StatusNotFound, httptest.PerformRequest(t, s.Router, http.MethodGet, itemURL, nil).Code)
	})

	s.Run("Error case: end date before start date", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, "Lakeside Loft", 5000, 2)
		body := builder.NewBookingBuilder().WithListingID(listingID).BuildRequestBody()
		body["end_date"] = "2026-03-01"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, s.Provider.Initiated())
	})
}
