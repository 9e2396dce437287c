//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/fake"
	commandsmock "travel-booking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const callbackURL = "http://localhost:8080/api/payments/verify"

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// scriptedRefs hands out references in order and repeats the last one.
type scriptedRefs struct {
	mu   sync.Mutex
	refs []payment.Reference
	n    int
}

func (s *scriptedRefs) Generate(int64) payment.Reference {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := min(s.n, len(s.refs)-1)
	s.n++
	return s.refs[i]
}

type BookingPaymentTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *fake.UnitOfWork
	gateway   *commandsmock.MockPaymentGateway
	notifier  *commandsmock.MockConfirmationNotifier
	listingID int64
}

func (s *BookingPaymentTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)
	s.notifier = commandsmock.NewMockConfirmationNotifier(s.ctrl)
	s.listingID = s.uow.SeedListing(shared.ListingSnapshot{
		Title:              "Beach House",
		Description:        "Two rooms by the sea",
		Location:           "Mombasa",
		PricePerNightCents: 5000,
		MaxGuests:          4,
		CreatedAt:          fixedNow,
		UpdatedAt:          fixedNow,
	})
}

func TestBookingPaymentSuite(t *testing.T) {
	suite.Run(t, new(BookingPaymentTestSuite))
}

func (s *BookingPaymentTestSuite) useCase(refs payment.ReferenceGenerator) commands.BookingPaymentCommands {
	if refs == nil {
		refs = payment.NewUUIDReferenceGenerator()
	}
	return commands.NewBookingPaymentUseCase(s.uow, s.gateway, s.notifier, refs, clock.NewMockClock(fixedNow))
}

func (s *BookingPaymentTestSuite) createRequest() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:  s.listingID,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@example.com",
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: money.FromCents(10000),
	}
}

func (s *BookingPaymentTestSuite) seedBooking(status booking.Status) int64 {
	return s.uow.SeedBooking(shared.BookingSnapshot{
		ListingID:       s.listingID,
		GuestName:       "Jane Doe",
		GuestEmail:      "jane@example.com",
		StartDate:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		TotalPriceCents: 10000,
		Status:          status.String(),
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	})
}

func (s *BookingPaymentTestSuite) seedPayment(bookingID int64, ref payment.Reference, status payment.Status) {
	s.uow.SeedPayment(shared.PaymentSnapshot{
		BookingID:        bookingID,
		BookingReference: ref.String(),
		AmountCents:      10000,
		Status:           status.String(),
		CreatedAt:        fixedNow,
		UpdatedAt:        fixedNow,
	})
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_Success() {
	var captured commands.PaymentRequest
	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.PaymentRequest) commands.GatewayResult {
			captured = req
			return commands.GatewayResult{Success: true, CheckoutURL: "https://checkout.chapa.co/pay/abc"}
		})

	res, err := s.useCase(nil).CreateBookingWithPayment(context.Background(), s.createRequest(), callbackURL)
	s.Require().NoError(err)

	s.True(res.Payment.Succeeded())
	s.Equal(payment.StatusPending, res.Payment.Status)
	s.Equal("https://checkout.chapa.co/pay/abc", res.Payment.CheckoutURL)
	s.Equal("100.00", res.Payment.Amount.String())
	s.True(res.Payment.BookingReference.IsWellFormed(), res.Payment.BookingReference)
	s.Contains(res.Payment.BookingReference.String(), "BK-")

	s.Equal("Jane", captured.FirstName)
	s.Equal("Doe", captured.LastName)
	s.Equal("jane@example.com", captured.Email)
	s.Equal("100.00", captured.Amount.String())
	s.Equal(res.Payment.BookingReference, captured.Reference)
	s.Equal(callbackURL, captured.CallbackURL)

	b, ok := s.uow.Booking(res.BookingID)
	s.Require().True(ok)
	s.Equal(booking.StatusPending.String(), b.Status)

	p, ok := s.uow.PaymentByBooking(res.BookingID)
	s.Require().True(ok)
	s.Equal(payment.StatusPending.String(), p.Status)
	s.Equal(res.Payment.BookingReference.String(), p.BookingReference)
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_InitiationFailureKeepsBooking() {
	cases := []struct {
		name      string
		result    commands.GatewayResult
		expectErr string
	}{
		{
			name:      "provider rejection",
			result:    commands.GatewayResult{Error: "Request error: provider returned 400: invalid email"},
			expectErr: "Request error: provider returned 400: invalid email",
		},
		{
			name:      "empty error falls back to generic message",
			result:    commands.GatewayResult{},
			expectErr: "Payment initiation failed",
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(tc.result)

			res, err := s.useCase(nil).CreateBookingWithPayment(context.Background(), s.createRequest(), callbackURL)
			s.Require().NoError(err)

			s.False(res.Payment.Succeeded())
			s.Equal(tc.expectErr, res.Payment.Error)
			s.Equal(payment.StatusFailed, res.Payment.Status)
			s.Empty(res.Payment.CheckoutURL)

			b, ok := s.uow.Booking(res.BookingID)
			s.Require().True(ok)
			s.Equal(booking.StatusPending.String(), b.Status)

			p, ok := s.uow.PaymentByBooking(res.BookingID)
			s.Require().True(ok)
			s.Equal(payment.StatusFailed.String(), p.Status)
		})
	}
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_UnknownListing() {
	req := s.createRequest()
	req.ListingID = 9999

	_, err := s.useCase(nil).CreateBookingWithPayment(context.Background(), req, callbackURL)
	s.ErrorIs(err, commands.ErrListingNotFound)
	s.Empty(s.uow.Payments())
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_InvalidInput() {
	cases := []struct {
		name   string
		mutate func(r *commands.CreateBookingRequest)
		errIs  error
	}{
		{"end before start", func(r *commands.CreateBookingRequest) {
			r.EndDate = r.StartDate.AddDate(0, 0, -1)
		}, booking.ErrInvalidStayPeriod},
		{"bad email", func(r *commands.CreateBookingRequest) { r.GuestEmail = "not-an-email" }, booking.ErrInvalidGuestEmail},
		{"blank guest", func(r *commands.CreateBookingRequest) { r.GuestName = "   " }, booking.ErrGuestNameRequired},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := s.createRequest()
			tc.mutate(&req)

			_, err := s.useCase(nil).CreateBookingWithPayment(context.Background(), req, callbackURL)
			s.Require().Error(err)
			s.True(errs.Is(err, errs.ErrDomainValidation))
			s.True(errs.Is(err, tc.errIs))
		})
	}
	s.Empty(s.uow.Payments())
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_RegeneratesCollidingReference() {
	taken := payment.Reference("BK-1-AAAAAAAA")
	fresh := payment.Reference("BK-1-BBBBBBBB")
	other := s.seedBooking(booking.StatusPending)
	s.seedPayment(other, taken, payment.StatusPending)

	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(commands.GatewayResult{Success: true, CheckoutURL: "https://checkout.chapa.co/pay/x"})

	refs := &scriptedRefs{refs: []payment.Reference{taken, fresh}}
	res, err := s.useCase(refs).CreateBookingWithPayment(context.Background(), s.createRequest(), callbackURL)
	s.Require().NoError(err)

	s.Equal(fresh, res.Payment.BookingReference)
	s.Equal(2, refs.n)
	s.Len(s.uow.Payments(), 2)
}

func (s *BookingPaymentTestSuite) TestCreateBookingWithPayment_ReferenceExhausted() {
	taken := payment.Reference("BK-1-AAAAAAAA")
	other := s.seedBooking(booking.StatusPending)
	s.seedPayment(other, taken, payment.StatusPending)

	refs := &scriptedRefs{refs: []payment.Reference{taken}}
	_, err := s.useCase(refs).CreateBookingWithPayment(context.Background(), s.createRequest(), callbackURL)

	s.ErrorIs(err, commands.ErrReferenceExhausted)
	s.Equal(5, refs.n)
	s.Len(s.uow.Payments(), 1)
	s.Equal(1, s.uow.Rollbacks)
}

func (s *BookingPaymentTestSuite) TestInitiatePayment_ReusesExistingReference() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.Reference("BK-2-CAFEBABE")
	s.seedPayment(bookingID, ref, payment.StatusFailed)

	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.PaymentRequest) commands.GatewayResult {
			s.Equal(ref, req.Reference)
			s.Equal("Jane", req.FirstName)
			return commands.GatewayResult{Success: true, CheckoutURL: "https://checkout.chapa.co/pay/again"}
		})

	res, err := s.useCase(nil).InitiatePayment(context.Background(), bookingID, callbackURL)
	s.Require().NoError(err)

	s.Equal(ref, res.BookingReference)
	s.Equal("https://checkout.chapa.co/pay/again", res.CheckoutURL)
	s.Equal("100.00", res.Amount.String())
	s.Len(s.uow.Payments(), 1)
}

func (s *BookingPaymentTestSuite) TestInitiatePayment_CreatesMissingPayment() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "0123ABCD")

	s.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(commands.GatewayResult{Success: true, CheckoutURL: "https://checkout.chapa.co/pay/new"})

	res, err := s.useCase(&scriptedRefs{refs: []payment.Reference{ref}}).InitiatePayment(context.Background(), bookingID, callbackURL)
	s.Require().NoError(err)

	s.Equal(ref, res.BookingReference)
	p, ok := s.uow.PaymentByBooking(bookingID)
	s.Require().True(ok)
	s.Equal(int64(10000), p.AmountCents)
	s.Equal(payment.StatusPending.String(), p.Status)
}

func (s *BookingPaymentTestSuite) TestInitiatePayment_Guards() {
	cases := []struct {
		name          string
		bookingStatus booking.Status
		paymentStatus payment.Status
		errIs         error
	}{
		{"completed payment", booking.StatusConfirmed, payment.StatusCompleted, commands.ErrPaymentAlreadyCompleted},
		{"confirmed booking without completed payment", booking.StatusConfirmed, payment.StatusFailed, commands.ErrBookingAlreadyConfirmed},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			bookingID := s.seedBooking(tc.bookingStatus)
			s.seedPayment(bookingID, payment.NewReference(bookingID, "FEEDFACE"), tc.paymentStatus)

			_, err := s.useCase(nil).InitiatePayment(context.Background(), bookingID, callbackURL)
			s.ErrorIs(err, tc.errIs)
		})
	}
}

func (s *BookingPaymentTestSuite) TestInitiatePayment_UnknownBooking() {
	_, err := s.useCase(nil).InitiatePayment(context.Background(), 4242, callbackURL)
	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_ConfirmsBooking() {
	cases := []struct {
		name      string
		txID      string
		expectTxn func(ref payment.Reference) string
	}{
		{"provider transaction id", "ext-99", func(payment.Reference) string { return "ext-99" }},
		{"falls back to reference", "", func(ref payment.Reference) string { return ref.String() }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			bookingID := s.seedBooking(booking.StatusPending)
			ref := payment.NewReference(bookingID, "ABCDEF12")
			s.seedPayment(bookingID, ref, payment.StatusPending)

			s.gateway.EXPECT().Verify(gomock.Any(), ref).
				Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: tc.txID})
			s.notifier.EXPECT().BookingConfirmed(gomock.Any(), bookingID).Return(nil)

			out, err := s.useCase(nil).VerifyPayment(context.Background(), "  "+ref.String()+" ")
			s.Require().NoError(err)

			s.Equal(commands.VerificationSuccess, out.Status)
			s.Equal(payment.StatusCompleted, out.PaymentStatus)
			s.Equal(bookingID, out.BookingID)
			s.Equal("Payment verified successfully", out.Message)
			s.False(out.AlreadyVerified)

			p, _ := s.uow.PaymentByBooking(bookingID)
			s.Equal(payment.StatusCompleted.String(), p.Status)
			s.Require().NotNil(p.TransactionID)
			s.Equal(tc.expectTxn(ref), *p.TransactionID)

			b, _ := s.uow.Booking(bookingID)
			s.Equal(booking.StatusConfirmed.String(), b.Status)
		})
	}
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_NotPaidFailsPayment() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "pending"})

	out, err := s.useCase(nil).VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)

	s.Equal(commands.VerificationFailed, out.Status)
	s.Equal(payment.StatusFailed, out.PaymentStatus)
	s.Equal("Payment verification failed", out.Message)

	p, _ := s.uow.PaymentByBooking(bookingID)
	s.Equal(payment.StatusFailed.String(), p.Status)
	b, _ := s.uow.Booking(bookingID)
	s.Equal(booking.StatusPending.String(), b.Status)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_FailedAttemptCanStillComplete() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusFailed)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: "ext-7"})
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), bookingID).Return(nil)

	clk := clock.NewMockClock(fixedNow.Add(time.Hour))
	uc := commands.NewBookingPaymentUseCase(s.uow, s.gateway, s.notifier, payment.NewUUIDReferenceGenerator(), clk)
	out, err := uc.VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)
	s.Equal(commands.VerificationSuccess, out.Status)

	p, _ := s.uow.PaymentByBooking(bookingID)
	s.Equal(payment.StatusCompleted.String(), p.Status)
	s.Require().NotNil(p.TransactionID)
	s.Equal("ext-7", *p.TransactionID)
	s.Equal(fixedNow.Add(time.Hour), p.UpdatedAt)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_GatewayErrorLeavesState() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Error: "Request error: timeout", Unavailable: true})

	out, err := s.useCase(nil).VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)

	s.Equal(commands.VerificationError, out.Status)
	s.Equal("Request error: timeout", out.Error)
	s.Equal(payment.StatusPending, out.PaymentStatus)

	p, _ := s.uow.PaymentByBooking(bookingID)
	s.Equal(payment.StatusPending.String(), p.Status)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_UnknownReference() {
	_, err := s.useCase(nil).VerifyPayment(context.Background(), "BK-1-00000000")
	s.ErrorIs(err, commands.ErrPaymentNotFound)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_AlreadyCompletedSkipsProvider() {
	bookingID := s.seedBooking(booking.StatusConfirmed)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusCompleted)

	out, err := s.useCase(nil).VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)

	s.True(out.AlreadyVerified)
	s.Equal(commands.VerificationSuccess, out.Status)
	s.Equal("Payment already verified", out.Message)
	s.Equal(bookingID, out.BookingID)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_SecondCallIsIdempotent() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: "ext-1"}).
		Times(1)
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), bookingID).Return(nil).Times(1)

	uc := s.useCase(nil)
	first, err := uc.VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)
	s.False(first.AlreadyVerified)

	second, err := uc.VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)
	s.True(second.AlreadyVerified)
	s.Equal(payment.StatusCompleted, second.PaymentStatus)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_NotifierErrorIsSwallowed() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: "ext-1"})
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), bookingID).Return(errors.New("outbox unavailable"))

	out, err := s.useCase(nil).VerifyPayment(context.Background(), ref.String())
	s.Require().NoError(err)
	s.Equal(commands.VerificationSuccess, out.Status)

	b, _ := s.uow.Booking(bookingID)
	s.Equal(booking.StatusConfirmed.String(), b.Status)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_BookingUpdateFailureRollsBack() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	dbErr := errors.New("connection reset")
	s.uow.BeforeBookingStatusUpdate = func() error { return dbErr }
	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: "ext-1"})

	_, err := s.useCase(nil).VerifyPayment(context.Background(), ref.String())
	s.ErrorIs(err, dbErr)

	p, _ := s.uow.PaymentByBooking(bookingID)
	s.Equal(payment.StatusPending.String(), p.Status)
	s.Nil(p.TransactionID)
	b, _ := s.uow.Booking(bookingID)
	s.Equal(booking.StatusPending.String(), b.Status)
}

func (s *BookingPaymentTestSuite) TestVerifyPayment_ConcurrentCallsConfirmOnce() {
	bookingID := s.seedBooking(booking.StatusPending)
	ref := payment.NewReference(bookingID, "ABCDEF12")
	s.seedPayment(bookingID, ref, payment.StatusPending)

	s.gateway.EXPECT().Verify(gomock.Any(), ref).
		Return(commands.GatewayResult{Success: true, ProviderStatus: "success", TransactionID: "ext-1"}).
		AnyTimes()
	s.notifier.EXPECT().BookingConfirmed(gomock.Any(), bookingID).Return(nil).Times(1)

	uc := s.useCase(nil)
	const callers = 8
	outcomes := make([]*commands.VerificationOutcome, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.VerifyPayment(context.Background(), ref.String())
			if err == nil {
				outcomes[i] = out
			}
		}()
	}
	wg.Wait()

	fresh := 0
	for _, out := range outcomes {
		s.Require().NotNil(out)
		s.Equal(payment.StatusCompleted, out.PaymentStatus)
		if !out.AlreadyVerified {
			fresh++
		}
	}
	s.Equal(1, fresh)
}
