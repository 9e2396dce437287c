//go:build unit || e2e || integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside a test transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestListing(t *testing.T, db DBLike, title string, pricePerNightCents int64, maxGuests int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO listings (title, description, location, price_per_night_cents, max_guests)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		title, "Fixture listing", "Addis Ababa", pricePerNightCents, maxGuests,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestBooking(t *testing.T, db DBLike, listingID int64, guestEmail string, start, end time.Time, totalCents int64, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (listing_id, guest_name, guest_email, start_date, end_date, total_price_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		listingID, "Fixture Guest", guestEmail, start, end, totalCents, status,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestPayment(t *testing.T, db DBLike, bookingID int64, reference string, amountCents int64, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO payments (booking_id, booking_reference, amount_cents, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		bookingID, reference, amountCents, status,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestReview(t *testing.T, db DBLike, listingID int64, reviewer string, rating int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO reviews (listing_id, reviewer_name, rating, comment)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		listingID, reviewer, rating, "Fixture comment",
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func PaymentStatus(t *testing.T, db DBLike, reference string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM payments WHERE booking_reference = $1", reference).Scan(&status)
	require.NoError(t, err)
	return status
}

func BookingStatus(t *testing.T, db DBLike, bookingID int64) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
