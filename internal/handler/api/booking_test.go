//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockPayments *commandsmock.MockBookingPaymentCommands
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockBookingPaymentCommands(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockPayments, s.mockCommands, s.mockQueries, config.PaymentConfig{})

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Replace)
	s.router.PATCH("/bookings/:id", s.handler.Patch)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.POST("/bookings/:id/initiate-payment", s.handler.InitiatePayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func initiation(status payment.Status, checkoutURL, errMsg string) commands.PaymentInitiation {
	return commands.PaymentInitiation{
		PaymentID:        1,
		Status:           status,
		BookingReference: payment.NewReference(1, "ABCDEF12"),
		Amount:           money.FromCents(10000),
		CheckoutURL:      checkoutURL,
		Error:            errMsg,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestBody()
	view := b.BuildView()

	s.Run("success: 201 with booking and checkout url", func() {
		s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), "http://example.com/api/payments/verify").
			DoAndReturn(func(_ any, req commands.CreateBookingRequest, _ string) (*commands.BookingPaymentResult, error) {
				s.Equal(b.ListingID, req.ListingID)
				s.Equal("jane@example.com", req.GuestEmail)
				s.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), req.StartDate)
				s.Equal(int64(10000), req.TotalPrice.Cents())
				return &commands.BookingPaymentResult{BookingID: 1, Payment: initiation(payment.StatusPending, "https://checkout.example/abc", "")}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2026-03-10", body.Booking.StartDate)
		s.Equal("100.00", body.Booking.TotalPrice)
		s.Equal("PENDING", body.Payment.Status)
		s.Equal("BK-1-ABCDEF12", body.Payment.BookingReference)
		s.Equal("100.00", body.Payment.Amount)
		s.Equal("https://checkout.example/abc", body.Payment.CheckoutURL)
		s.Empty(body.Payment.Error)
	})

	s.Run("success: 201 even when initiation failed", func() {
		s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.BookingPaymentResult{BookingID: 1, Payment: initiation(payment.StatusFailed, "", "payment provider unavailable")}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("FAILED", body.Payment.Status)
		s.Equal("payment provider unavailable", body.Payment.Error)
		s.Empty(body.Payment.CheckoutURL)
	})

	s.Run("error: 400 on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing listing", testutil.Field("listing", nil)},
			{"bad email", testutil.Field("guest_email", "jane")},
			{"bad date", testutil.Field("start_date", "10/03/2026")},
			{"bad price", testutil.Field("total_price", "ten")},
			{"missing price", testutil.Field("total_price", nil)},
			{"price overflows cents", testutil.Field("total_price", "184467440737095517")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("success: numeric price is accepted", func() {
		s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateBookingRequest, _ string) (*commands.BookingPaymentResult, error) {
				s.Equal(int64(12550), req.TotalPrice.Cents())
				return &commands.BookingPaymentResult{BookingID: 1, Payment: initiation(payment.StatusPending, "u", "")}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", testutil.DtoMap(s.T(), reqBody, testutil.Field("total_price", 125.5)))
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown listing", commands.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
			{"domain validation", errs.Mark(errors.New("end date must not be before start date"), errs.ErrDomainValidation), http.StatusBadRequest, "Validation failed"},
			{"database failure", errors.New("connection reset"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCreate_CallbackURL() {
	view := builder.NewBookingBuilder().BuildView()
	ok := &commands.BookingPaymentResult{BookingID: 1, Payment: initiation(payment.StatusPending, "u", "")}

	s.Run("forwarded proto is honoured", func() {
		s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), "https://example.com/api/payments/verify").Return(ok, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/bookings",
			builder.NewBookingBuilder().BuildRequestBody(), map[string]string{"X-Forwarded-Proto": "https"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("configured callback wins", func() {
		h := api.NewBookingHandler(s.mockPayments, s.mockCommands, s.mockQueries, config.PaymentConfig{CallbackURL: "https://hooks.example/verify"})
		r := gin.New()
		r.POST("/bookings", h.Create)

		s.mockPayments.EXPECT().CreateBookingWithPayment(gomock.Any(), gomock.Any(), "https://hooks.example/verify").Return(ok, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), r, http.MethodPost, "/bookings", builder.NewBookingBuilder().BuildRequestBody())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}

// ================================================================================
// TestInitiatePayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestInitiatePayment() {
	url := "/bookings/1/initiate-payment"

	s.Run("success: 200 with checkout info", func() {
		p := initiation(payment.StatusPending, "https://checkout.example/abc", "")
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), int64(1), gomock.Any()).Return(&p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.InitiatePaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("success", body.Status)
		s.Equal("BK-1-ABCDEF12", body.Payment.BookingReference)
		s.Equal("100.00", body.Payment.Amount)
		s.Equal("https://checkout.example/abc", body.Payment.CheckoutURL)
	})

	s.Run("error: 400 with status error on gateway failure", func() {
		p := initiation(payment.StatusFailed, "", "request timed out")
		s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), int64(1), gomock.Any()).Return(&p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertStatusError(s.T(), rec, http.StatusBadRequest, "request timed out")
	})

	s.Run("error: maps guards and not found", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"already completed", commands.ErrPaymentAlreadyCompleted, http.StatusBadRequest, "Payment already completed for this booking"},
			{"already confirmed", commands.ErrBookingAlreadyConfirmed, http.StatusBadRequest, "Booking is already confirmed"},
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockPayments.EXPECT().InitiatePayment(gomock.Any(), int64(1), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/abc/initiate-payment", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestReadAndList
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: 200", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.ListingTitle = "Seaside Cottage"
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/1", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Seaside Cottage", body.ListingTitle)
		s.Equal("2026-03-12", body.EndDate)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/9", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("filters by listing and returns cursor", func() {
		listingID := int64(3)
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookingFilters{ListingID: &listingID}, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildView()}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?listing_id=3&limit=5&after=abc", nil)

		var body struct {
			Bookings   []resdto.BookingResponse `json:"bookings"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: invalid listing_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?listing_id=x", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing_id")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=zzz", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestPatch() {
	s.Run("success: only sent fields are changed", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, c commands.BookingChanges) error {
				s.Nil(c.GuestName)
				s.Nil(c.TotalPriceCents)
				s.Require().NotNil(c.Status)
				s.Equal("CANCELLED", *c.Status)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewBookingBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1", map[string]any{"status": "CANCELLED"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/1", map[string]any{"status": "ARCHIVED"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestReplace() {
	body := builder.NewBookingBuilder().BuildRequestBody()
	delete(body, "listing")
	body["status"] = "CONFIRMED"

	s.Run("success: every field is sent", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, c commands.BookingChanges) error {
				s.Require().NotNil(c.TotalPriceCents)
				s.Equal(int64(10000), *c.TotalPriceCents)
				s.Require().NotNil(c.EndDate)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(builder.NewBookingBuilder().BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1", body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/1", testutil.DtoMap(s.T(), body, testutil.Field("status", nil)))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(2)).Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/2", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
