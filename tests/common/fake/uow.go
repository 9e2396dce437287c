// Package fake holds an in-memory unit of work for use-case tests.
package fake

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/review"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errMissingRow = errs.New("no rows")
	errForeignKey = errs.New("foreign key violation")
)

type Job struct {
	shared.NotificationJob
	Status string
}

type state struct {
	listings map[int64]shared.ListingSnapshot
	bookings map[int64]shared.BookingSnapshot
	payments map[int64]shared.PaymentSnapshot
	reviews  map[int64]shared.ReviewSnapshot
	jobs     []Job
	nextID   int64
}

func (s *state) clone() *state {
	return &state{
		listings: maps.Clone(s.listings),
		bookings: maps.Clone(s.bookings),
		payments: maps.Clone(s.payments),
		reviews:  maps.Clone(s.reviews),
		jobs:     slices.Clone(s.jobs),
		nextID:   s.nextID,
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// UnitOfWork applies a Within callback to a private copy of the state and
// publishes it only when the callback succeeds.
type UnitOfWork struct {
	mu    sync.Mutex
	state *state

	// Hooks run inside the transaction; a non-nil error aborts it.
	BeforeBookingStatusUpdate func() error
	BeforeJobCreate           func() error

	Commits   int
	Rollbacks int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{state: &state{
		listings: map[int64]shared.ListingSnapshot{},
		bookings: map[int64]shared.BookingSnapshot{},
		payments: map[int64]shared.PaymentSnapshot{},
		reviews:  map[int64]shared.ReviewSnapshot{},
	}}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	working := u.state.clone()
	if err := fn(ctx, &tx{uow: u, s: working}); err != nil {
		u.Rollbacks++
		return err
	}
	u.state = working
	u.Commits++
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &lockedReads{uow: u}
}

// Seed helpers write committed rows directly and return their ids.

func (u *UnitOfWork) SeedListing(l shared.ListingSnapshot) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	l.ID = u.state.id()
	u.state.listings[l.ID] = l
	return l.ID
}

func (u *UnitOfWork) SeedBooking(b shared.BookingSnapshot) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	b.ID = u.state.id()
	u.state.bookings[b.ID] = b
	return b.ID
}

func (u *UnitOfWork) SeedPayment(p shared.PaymentSnapshot) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	p.ID = u.state.id()
	u.state.payments[p.ID] = p
	return p.ID
}

func (u *UnitOfWork) Listing(id int64) (shared.ListingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.state.listings[id]
	return l, ok
}

func (u *UnitOfWork) Booking(id int64) (shared.BookingSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b, ok := u.state.bookings[id]
	return b, ok
}

func (u *UnitOfWork) Review(id int64) (shared.ReviewSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	r, ok := u.state.reviews[id]
	return r, ok
}

func (u *UnitOfWork) PaymentByBooking(bookingID int64) (shared.PaymentSnapshot, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return findPaymentByBooking(u.state, bookingID)
}

func (u *UnitOfWork) Payments() []shared.PaymentSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Collect(maps.Values(u.state.payments))
}

func (u *UnitOfWork) Jobs() []Job {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.state.jobs)
}

type tx struct {
	uow *UnitOfWork
	s   *state
}

func (t *tx) Listings() shared.ListingRepository           { return &listingRepo{t} }
func (t *tx) Bookings() shared.BookingRepository           { return &bookingRepo{t} }
func (t *tx) Payments() shared.PaymentRepository           { return &paymentRepo{t} }
func (t *tx) Reviews() shared.ReviewRepository             { return &reviewRepo{t} }
func (t *tx) Notifications() shared.NotificationRepository { return &notificationRepo{t} }
func (t *tx) Reads() shared.CommandReads                   { return &reads{s: t.s} }
func (t *tx) DB() sqlc.DBTX                                { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errMissingRow, infra.KindNotFound)
}

type listingRepo struct{ t *tx }

func (r *listingRepo) Create(_ context.Context, _ sqlc.DBTX, l *listing.Listing) (int64, error) {
	id := r.t.s.id()
	r.t.s.listings[id] = listingSnapshot(id, l)
	return id, nil
}

func (r *listingRepo) Update(_ context.Context, _ sqlc.DBTX, l *listing.Listing) error {
	if _, ok := r.t.s.listings[l.ID()]; !ok {
		return notFound("listing")
	}
	r.t.s.listings[l.ID()] = listingSnapshot(l.ID(), l)
	return nil
}

// Delete cascades like the schema does.
func (r *listingRepo) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	if _, ok := r.t.s.listings[id]; !ok {
		return notFound("listing")
	}
	delete(r.t.s.listings, id)
	for bid, b := range r.t.s.bookings {
		if b.ListingID == id {
			deleteBooking(r.t.s, bid)
		}
	}
	for rid, rv := range r.t.s.reviews {
		if rv.ListingID == id {
			delete(r.t.s.reviews, rid)
		}
	}
	return nil
}

func listingSnapshot(id int64, l *listing.Listing) shared.ListingSnapshot {
	return shared.ListingSnapshot{
		ID:                 id,
		Title:              l.Title(),
		Description:        l.Description(),
		Location:           l.Location(),
		PricePerNightCents: l.PricePerNight().Cents(),
		MaxGuests:          l.MaxGuests(),
		CreatedAt:          l.CreatedAt(),
		UpdatedAt:          l.UpdatedAt(),
	}
}

type bookingRepo struct{ t *tx }

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (int64, error) {
	if _, ok := r.t.s.listings[b.ListingID()]; !ok {
		return 0, infra.WrapRepoErr("failed to create booking", errForeignKey, infra.KindForeignKeyViolated)
	}
	id := r.t.s.id()
	r.t.s.bookings[id] = bookingSnapshot(id, b)
	return id, nil
}

func (r *bookingRepo) Update(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.t.s.bookings[b.ID()]; !ok {
		return notFound("booking")
	}
	r.t.s.bookings[b.ID()] = bookingSnapshot(b.ID(), b)
	return nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, bookingID int64, status booking.Status, at time.Time) error {
	if hook := r.t.uow.BeforeBookingStatusUpdate; hook != nil {
		if err := hook(); err != nil {
			return err
		}
	}
	b, ok := r.t.s.bookings[bookingID]
	if !ok {
		return notFound("booking")
	}
	b.Status = status.String()
	b.UpdatedAt = at
	r.t.s.bookings[bookingID] = b
	return nil
}

func (r *bookingRepo) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	if _, ok := r.t.s.bookings[id]; !ok {
		return notFound("booking")
	}
	deleteBooking(r.t.s, id)
	return nil
}

func deleteBooking(s *state, id int64) {
	delete(s.bookings, id)
	for pid, p := range s.payments {
		if p.BookingID == id {
			delete(s.payments, pid)
		}
	}
}

func bookingSnapshot(id int64, b *booking.Booking) shared.BookingSnapshot {
	return shared.BookingSnapshot{
		ID:              id,
		ListingID:       b.ListingID(),
		GuestName:       b.GuestName().String(),
		GuestEmail:      b.GuestEmail().String(),
		StartDate:       b.Period().Start(),
		EndDate:         b.Period().End(),
		TotalPriceCents: b.TotalPrice().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

type paymentRepo struct{ t *tx }

// Create mirrors ON CONFLICT DO NOTHING on booking_id and booking_reference.
func (r *paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (int64, bool, error) {
	if _, ok := r.t.s.bookings[p.BookingID()]; !ok {
		return 0, false, infra.WrapRepoErr("failed to create payment", errForeignKey, infra.KindForeignKeyViolated)
	}
	for _, existing := range r.t.s.payments {
		if existing.BookingID == p.BookingID() || existing.BookingReference == p.Reference().String() {
			return 0, false, nil
		}
	}
	id := r.t.s.id()
	r.t.s.payments[id] = shared.PaymentSnapshot{
		ID:               id,
		BookingID:        p.BookingID(),
		BookingReference: p.Reference().String(),
		TransactionID:    p.TransactionID(),
		AmountCents:      p.Amount().Cents(),
		Status:           p.Status().String(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
	return id, true, nil
}

func (r *paymentRepo) TransitionStatus(_ context.Context, _ sqlc.DBTX, ref payment.Reference, from []payment.Status, to payment.Status, transactionID *string, at time.Time) (bool, error) {
	for id, p := range r.t.s.payments {
		if p.BookingReference != ref.String() {
			continue
		}
		if !slices.Contains(from, payment.Status(p.Status)) {
			return false, nil
		}
		p.Status = to.String()
		if transactionID != nil {
			txID := *transactionID
			p.TransactionID = &txID
		}
		p.UpdatedAt = at
		r.t.s.payments[id] = p
		return true, nil
	}
	return false, nil
}

type reviewRepo struct{ t *tx }

func (r *reviewRepo) Create(_ context.Context, _ sqlc.DBTX, rev *review.Review) (int64, error) {
	if _, ok := r.t.s.listings[rev.ListingID()]; !ok {
		return 0, infra.WrapRepoErr("failed to create review", errForeignKey, infra.KindForeignKeyViolated)
	}
	id := r.t.s.id()
	r.t.s.reviews[id] = reviewSnapshot(id, rev)
	return id, nil
}

func (r *reviewRepo) Update(_ context.Context, _ sqlc.DBTX, rev *review.Review) error {
	if _, ok := r.t.s.reviews[rev.ID()]; !ok {
		return notFound("review")
	}
	r.t.s.reviews[rev.ID()] = reviewSnapshot(rev.ID(), rev)
	return nil
}

func (r *reviewRepo) Delete(_ context.Context, _ sqlc.DBTX, id int64) error {
	if _, ok := r.t.s.reviews[id]; !ok {
		return notFound("review")
	}
	delete(r.t.s.reviews, id)
	return nil
}

func reviewSnapshot(id int64, rev *review.Review) shared.ReviewSnapshot {
	return shared.ReviewSnapshot{
		ID:           id,
		ListingID:    rev.ListingID(),
		ReviewerName: rev.ReviewerName().String(),
		Rating:       rev.Rating().Value(),
		Comment:      rev.Comment().String(),
		CreatedAt:    rev.CreatedAt(),
		UpdatedAt:    rev.UpdatedAt(),
	}
}

type notificationRepo struct{ t *tx }

func (r *notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if hook := r.t.uow.BeforeJobCreate; hook != nil {
		if err := hook(); err != nil {
			return err
		}
	}
	r.t.s.jobs = append(r.t.s.jobs, Job{
		NotificationJob: shared.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: slices.Clone(payload),
			RunAt:   runAt,
		},
		Status: "queued",
	})
	return nil
}

type reads struct{ s *state }

func (r *reads) ListingByID(_ context.Context, id int64) (*shared.ListingSnapshot, error) {
	l, ok := r.s.listings[id]
	if !ok {
		return nil, notFound("listing")
	}
	return &l, nil
}

func (r *reads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (r *reads) PaymentByReference(_ context.Context, ref payment.Reference) (*shared.PaymentSnapshot, error) {
	for _, p := range r.s.payments {
		if p.BookingReference == ref.String() {
			return &p, nil
		}
	}
	return nil, notFound("payment")
}

func (r *reads) PaymentByBookingID(_ context.Context, bookingID int64) (*shared.PaymentSnapshot, error) {
	p, ok := findPaymentByBooking(r.s, bookingID)
	if !ok {
		return nil, notFound("payment")
	}
	return &p, nil
}

func (r *reads) ReviewByID(_ context.Context, id int64) (*shared.ReviewSnapshot, error) {
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, notFound("review")
	}
	return &rv, nil
}

func findPaymentByBooking(s *state, bookingID int64) (shared.PaymentSnapshot, bool) {
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			return p, true
		}
	}
	return shared.PaymentSnapshot{}, false
}

// lockedReads serves committed state outside any transaction.
type lockedReads struct{ uow *UnitOfWork }

func (r *lockedReads) committed() *reads {
	return &reads{s: r.uow.state}
}

func (r *lockedReads) ListingByID(ctx context.Context, id int64) (*shared.ListingSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.committed().ListingByID(ctx, id)
}

func (r *lockedReads) BookingByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.committed().BookingByID(ctx, id)
}

func (r *lockedReads) PaymentByReference(ctx context.Context, ref payment.Reference) (*shared.PaymentSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.committed().PaymentByReference(ctx, ref)
}

func (r *lockedReads) PaymentByBookingID(ctx context.Context, bookingID int64) (*shared.PaymentSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.committed().PaymentByBookingID(ctx, bookingID)
}

func (r *lockedReads) ReviewByID(ctx context.Context, id int64) (*shared.ReviewSnapshot, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.committed().ReviewByID(ctx, id)
}
