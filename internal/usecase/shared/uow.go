package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/listing"
	"travel-booking/internal/domain/payment"
	"travel-booking/internal/domain/review"
	sqlc "travel-booking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads return a NotFound repository error when the row is missing.
type CommandReads interface {
	ListingByID(ctx context.Context, id int64) (*ListingSnapshot, error)
	BookingByID(ctx context.Context, id int64) (*BookingSnapshot, error)
	PaymentByReference(ctx context.Context, ref payment.Reference) (*PaymentSnapshot, error)
	PaymentByBookingID(ctx context.Context, bookingID int64) (*PaymentSnapshot, error)
	ReviewByID(ctx context.Context, id int64) (*ReviewSnapshot, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID int64, status booking.Status, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type PaymentRepository interface {
	// Create reports inserted=false when a uniqueness constraint absorbed the row.
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (id int64, inserted bool, err error)
	// TransitionStatus is a compare-and-swap on the current status; it reports
	// whether the row moved.
	TransitionStatus(ctx context.Context, tx sqlc.DBTX, ref payment.Reference, from []payment.Status, to payment.Status, transactionID *string, at time.Time) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
