package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/money"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

const maxPaymentCreateAttempts = 5

const (
	msgInitiationFailed   = "Payment initiation failed"
	msgVerified           = "Payment verified successfully"
	msgAlreadyVerified    = "Payment already verified"
	msgVerificationFailed = "Payment verification failed"
)

type CreateBookingRequest struct {
	ListingID  int64
	GuestName  string
	GuestEmail string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice money.Money
}

// PaymentInitiation reports the payment side of a booking; Error is set when
// the provider refused or could not be reached.
type PaymentInitiation struct {
	PaymentID        int64
	Status           payment.Status
	BookingReference payment.Reference
	Amount           money.Money
	CheckoutURL      string
	Error            string
}

func (p PaymentInitiation) Succeeded() bool { return p.Error == "" }

type BookingPaymentResult struct {
	BookingID int64
	Payment   PaymentInitiation
}

type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "success"
	VerificationFailed  VerificationStatus = "failed"
	VerificationError   VerificationStatus = "error"
)

type VerificationOutcome struct {
	Status          VerificationStatus
	PaymentStatus   payment.Status
	BookingID       int64
	Message         string
	Error           string
	AlreadyVerified bool
}

type BookingPaymentCommands interface {
	CreateBookingWithPayment(ctx context.Context, req CreateBookingRequest, callbackURL string) (*BookingPaymentResult, error)
	InitiatePayment(ctx context.Context, bookingID int64, callbackURL string) (*PaymentInitiation, error)
	VerifyPayment(ctx context.Context, reference string) (*VerificationOutcome, error)
}

type bookingPaymentUseCase struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier ConfirmationNotifier
	refs     payment.ReferenceGenerator
	clock    clock.Clock
}

func NewBookingPaymentUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier ConfirmationNotifier,
	refs payment.ReferenceGenerator,
	clk clock.Clock,
) BookingPaymentCommands {
	return &bookingPaymentUseCase{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		refs:     refs,
		clock:    clk,
	}
}

// CreateBookingWithPayment stores the booking and its Pending payment in one
// transaction, then calls the provider outside of it. A refused initiation
// marks the payment Failed and keeps the booking.
func (uc *bookingPaymentUseCase) CreateBookingWithPayment(ctx context.Context, req CreateBookingRequest, callbackURL string) (*BookingPaymentResult, error) {
	now := uc.clock.Now()
	b, err := booking.NewBooking(booking.Details{
		ListingID:  req.ListingID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice,
	}, now)
	if err != nil {
		return nil, invalid(err)
	}

	var (
		bookingID int64
		p         *shared.PaymentSnapshot
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, rerr := tx.Reads().ListingByID(ctx, req.ListingID); rerr != nil {
			return notFoundAs(rerr, ErrListingNotFound)
		}
		id, cerr := tx.Bookings().Create(ctx, tx.DB(), b)
		if cerr != nil {
			return cerr
		}
		bookingID = id

		created, cerr := uc.createPayment(ctx, tx, id, b.TotalPrice(), now)
		if cerr != nil {
			return cerr
		}
		p = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Booking created", "booking_id", bookingID, "booking_reference", p.BookingReference)

	initiation := uc.initiate(ctx, p, b.GuestName(), b.GuestEmail().String(), callbackURL)
	return &BookingPaymentResult{BookingID: bookingID, Payment: initiation}, nil
}

// InitiatePayment reuses the booking's payment record, creating it on first use.
func (uc *bookingPaymentUseCase) InitiatePayment(ctx context.Context, bookingID int64, callbackURL string) (*PaymentInitiation, error) {
	var (
		b *shared.BookingSnapshot
		p *shared.PaymentSnapshot
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().BookingByID(ctx, bookingID)
		if rerr != nil {
			return notFoundAs(rerr, ErrBookingNotFound)
		}
		b = snap

		existing, rerr := tx.Reads().PaymentByBookingID(ctx, bookingID)
		switch {
		case rerr == nil:
			if booking.Status(snap.Status) == booking.StatusConfirmed && payment.Status(existing.Status) != payment.StatusCompleted {
				return ErrBookingAlreadyConfirmed
			}
			p = existing
		case infra.IsKind(rerr, infra.KindNotFound):
			created, cerr := uc.createPayment(ctx, tx, bookingID, money.FromCents(snap.TotalPriceCents), uc.clock.Now())
			if cerr != nil {
				return cerr
			}
			p = created
		default:
			return rerr
		}

		if p.ToDomain().EnsureInitiable() != nil {
			return ErrPaymentAlreadyCompleted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dom := b.ToDomain()
	initiation := uc.initiate(ctx, p, dom.GuestName(), dom.GuestEmail().String(), callbackURL)
	return &initiation, nil
}

// createPayment absorbs uniqueness conflicts: an existing payment for the
// booking is returned as is, a reference collision draws a new token.
func (uc *bookingPaymentUseCase) createPayment(ctx context.Context, tx shared.Tx, bookingID int64, amount money.Money, now time.Time) (*shared.PaymentSnapshot, error) {
	for attempt := 1; attempt <= maxPaymentCreateAttempts; attempt++ {
		ref := uc.refs.Generate(bookingID)
		p, err := payment.NewPayment(bookingID, ref, amount, now)
		if err != nil {
			return nil, invalid(err)
		}

		id, inserted, err := tx.Payments().Create(ctx, tx.DB(), p)
		if err != nil {
			return nil, err
		}
		if inserted {
			return &shared.PaymentSnapshot{
				ID:               id,
				BookingID:        bookingID,
				BookingReference: ref.String(),
				AmountCents:      amount.Cents(),
				Status:           payment.StatusPending.String(),
				CreatedAt:        now,
				UpdatedAt:        now,
			}, nil
		}

		existing, err := tx.Reads().PaymentByBookingID(ctx, bookingID)
		if err == nil {
			return existing, nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		slog.Warn("Booking reference collided, regenerating",
			"booking_id", bookingID,
			"booking_reference", ref.String(),
			"attempt", attempt)
	}
	return nil, ErrReferenceExhausted
}

func (uc *bookingPaymentUseCase) initiate(ctx context.Context, p *shared.PaymentSnapshot, guest booking.GuestName, email, callbackURL string) PaymentInitiation {
	ref := payment.Reference(p.BookingReference)
	out := PaymentInitiation{
		PaymentID:        p.ID,
		Status:           payment.Status(p.Status),
		BookingReference: ref,
		Amount:           money.FromCents(p.AmountCents),
	}

	first, last := guest.Split()
	res := uc.gateway.Initiate(ctx, PaymentRequest{
		Amount:      out.Amount,
		Email:       email,
		FirstName:   first,
		LastName:    last,
		Reference:   ref,
		CallbackURL: callbackURL,
	})
	if res.Success {
		out.CheckoutURL = res.CheckoutURL
		return out
	}

	out.Error = res.Error
	if out.Error == "" {
		out.Error = msgInitiationFailed
	}
	slog.Warn("Payment initiation failed", "booking_id", p.BookingID, "booking_reference", p.BookingReference, "error", out.Error)

	// The booking stays; only the payment attempt is marked.
	moved, err := uc.transition(context.WithoutCancel(ctx), p, failPayment)
	if err != nil {
		slog.Error("Failed to mark payment as failed", "booking_reference", p.BookingReference, "error", err)
		return out
	}
	if moved {
		out.Status = payment.StatusFailed
	}
	return out
}

func failPayment(p *payment.Payment, now time.Time) error { return p.Fail(now) }

// transition applies the change to the aggregate, then persists it with a
// compare-and-swap on the statuses allowed to reach the new one. A change the
// aggregate refuses, or a CAS that matches no row, reports false.
func (uc *bookingPaymentUseCase) transition(ctx context.Context, snap *shared.PaymentSnapshot, change func(*payment.Payment, time.Time) error) (bool, error) {
	var moved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := uc.applyTransition(ctx, tx, snap, change)
		moved = ok
		return err
	})
	return moved, err
}

func (uc *bookingPaymentUseCase) applyTransition(ctx context.Context, tx shared.Tx, snap *shared.PaymentSnapshot, change func(*payment.Payment, time.Time) error) (bool, error) {
	p := snap.ToDomain()
	if err := change(p, uc.clock.Now()); err != nil {
		if errs.Is(err, payment.ErrInvalidTransition) {
			return false, nil
		}
		return false, err
	}
	return tx.Payments().TransitionStatus(ctx, tx.DB(), p.Reference(), payment.SourcesFor(p.Status()), p.Status(), p.TransactionID(), p.UpdatedAt())
}

// VerifyPayment asks the provider for the authoritative outcome. Completion of
// the payment and confirmation of the booking commit together; the status
// compare-and-swap lets exactly one concurrent caller confirm and notify.
func (uc *bookingPaymentUseCase) VerifyPayment(ctx context.Context, reference string) (*VerificationOutcome, error) {
	ref := payment.Reference(strings.TrimSpace(reference))

	p, err := uc.uow.CommandReads().PaymentByReference(ctx, ref)
	if err != nil {
		return nil, notFoundAs(err, ErrPaymentNotFound)
	}
	if p.ToDomain().IsCompleted() {
		return alreadyVerified(p.BookingID), nil
	}

	res := uc.gateway.Verify(ctx, ref)
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = msgVerificationFailed
		}
		slog.Warn("Payment verification error", "booking_reference", ref.String(), "error", msg)
		return &VerificationOutcome{
			Status:        VerificationError,
			PaymentStatus: payment.Status(p.Status),
			BookingID:     p.BookingID,
			Error:         msg,
		}, nil
	}

	// state changes below must not be lost to a client disconnect
	ctx = context.WithoutCancel(ctx)

	if !res.IsPaid() {
		return uc.failVerification(ctx, ref, p, res.ProviderStatus)
	}

	txID := res.TransactionID
	if txID == "" {
		txID = ref.String()
	}

	var confirmed bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		moved, terr := uc.applyTransition(ctx, tx, p, func(pay *payment.Payment, now time.Time) error {
			return pay.Complete(txID, now)
		})
		if terr != nil {
			return terr
		}
		if !moved {
			return nil
		}
		confirmed = true
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), p.BookingID, booking.StatusConfirmed, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if !confirmed {
		// another verification won the race
		return alreadyVerified(p.BookingID), nil
	}

	slog.Info("Payment verified", "booking_id", p.BookingID, "booking_reference", ref.String(), "transaction_id", txID)

	if nerr := uc.notifier.BookingConfirmed(ctx, p.BookingID); nerr != nil {
		slog.Error("Failed to schedule booking confirmation", "booking_id", p.BookingID, "error", nerr)
	}

	return &VerificationOutcome{
		Status:        VerificationSuccess,
		PaymentStatus: payment.StatusCompleted,
		BookingID:     p.BookingID,
		Message:       msgVerified,
	}, nil
}

func (uc *bookingPaymentUseCase) failVerification(ctx context.Context, ref payment.Reference, p *shared.PaymentSnapshot, providerStatus string) (*VerificationOutcome, error) {
	moved, err := uc.transition(ctx, p, failPayment)
	if err != nil {
		return nil, err
	}
	if !moved {
		// only a Completed payment refuses to fail
		return alreadyVerified(p.BookingID), nil
	}

	slog.Warn("Payment not successful", "booking_id", p.BookingID, "booking_reference", ref.String(), "provider_status", providerStatus)
	return &VerificationOutcome{
		Status:        VerificationFailed,
		PaymentStatus: payment.StatusFailed,
		BookingID:     p.BookingID,
		Message:       msgVerificationFailed,
	}, nil
}

func alreadyVerified(bookingID int64) *VerificationOutcome {
	return &VerificationOutcome{
		Status:          VerificationSuccess,
		PaymentStatus:   payment.StatusCompleted,
		BookingID:       bookingID,
		Message:         msgAlreadyVerified,
		AlreadyVerified: true,
	}
}
