package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"travel-booking/internal/infra"
	"travel-booking/internal/infra/notify"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errUnsupportedTopic = errs.New("unsupported notification topic")
	errBookingGone      = errs.New("booking no longer exists")
)

// JobStore is the dispatcher's view of the notification_jobs table.
type JobStore interface {
	ClaimDue(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastError string, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, at time.Time) error
	RequeueStale(ctx context.Context, staleBefore, now time.Time) (int64, error)
}

// NotificationDispatcher delivers queued booking confirmations.
type NotificationDispatcher struct {
	jobs   JobStore
	reads  shared.CommandReads
	sender notify.Sender
	cfg    config.NotificationConfig
	clock  clock.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotificationDispatcher(
	jobs JobStore,
	reads shared.CommandReads,
	sender notify.Sender,
	cfg config.NotificationConfig,
	clk clock.Clock,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		jobs:   jobs,
		reads:  reads,
		sender: sender,
		cfg:    cfg,
		clock:  clk,
	}
}

// Start launches the poll loop; it returns immediately.
func (d *NotificationDispatcher) Start(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.run(ctx, d.done)

	slog.Info("Notification dispatcher started", "poll_interval", d.cfg.PollInterval, "batch_size", d.cfg.BatchSize)
	return nil
}

// Stop cancels the loop and waits for the in-flight batch or ctx, whichever ends first.
func (d *NotificationDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()
	if cancel == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		slog.Info("Notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("Notification dispatch failed", "error", err)
			}
		}
	}
}

// RunOnce requeues abandoned jobs, then claims and handles one batch. It
// returns the number of claimed jobs.
func (d *NotificationDispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()
	if d.cfg.StaleAfter > 0 {
		n, err := d.jobs.RequeueStale(ctx, now.Add(-d.cfg.StaleAfter), now)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			slog.Warn("Requeued stale notification jobs", "count", n)
		}
	}

	jobs, err := d.jobs.ClaimDue(ctx, now, d.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	for _, job := range jobs {
		d.handle(ctx, job)
	}
	return len(jobs), nil
}

func (d *NotificationDispatcher) handle(ctx context.Context, job shared.NotificationJob) {
	log := slog.With("job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts)

	msg, err := d.render(ctx, job)
	if err != nil {
		// rendering failures do not heal with time
		log.Error("Notification job dropped", "error", err)
		d.markFailed(ctx, job, err)
		return
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		d.retryOrFail(ctx, job, err)
		return
	}

	if err := d.jobs.MarkSent(ctx, job.ID, d.clock.Now()); err != nil {
		log.Error("Failed to mark notification job sent", "error", err)
		return
	}
	log.Info("Booking confirmation sent", "booking_id", msg.BookingID, "to", msg.To)
}

func (d *NotificationDispatcher) render(ctx context.Context, job shared.NotificationJob) (notify.Message, error) {
	if job.Topic != notify.TopicBookingConfirmed {
		return notify.Message{}, errUnsupportedTopic
	}

	var payload notify.BookingConfirmedPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return notify.Message{}, errs.Wrap(err, "decode notification payload")
	}

	b, err := d.reads.BookingByID(ctx, payload.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return notify.Message{}, errBookingGone
		}
		return notify.Message{}, err
	}
	l, err := d.reads.ListingByID(ctx, b.ListingID)
	if err != nil {
		return notify.Message{}, err
	}
	return notify.BookingConfirmation(b, l, d.cfg.FromEmail)
}

// retryOrFail schedules attempt n+1 after BaseBackoff*2^n until MaxRetries is reached.
func (d *NotificationDispatcher) retryOrFail(ctx context.Context, job shared.NotificationJob, sendErr error) {
	if job.Attempts >= d.cfg.MaxRetries {
		slog.Error("Notification job exhausted retries", "job_id", job.ID, "attempts", job.Attempts+1, "error", sendErr)
		d.markFailed(ctx, job, sendErr)
		return
	}

	now := d.clock.Now()
	runAt := now.Add(Backoff(d.cfg.BaseBackoff, job.Attempts))
	if err := d.jobs.Reschedule(ctx, job.ID, runAt, sendErr.Error(), now); err != nil {
		slog.Error("Failed to reschedule notification job", "job_id", job.ID, "error", err)
		return
	}
	slog.Warn("Notification send failed, retrying", "job_id", job.ID, "attempts", job.Attempts+1, "run_at", runAt, "error", sendErr)
}

func (d *NotificationDispatcher) markFailed(ctx context.Context, job shared.NotificationJob, cause error) {
	if err := d.jobs.MarkFailed(ctx, job.ID, cause.Error(), d.clock.Now()); err != nil {
		slog.Error("Failed to mark notification job failed", "job_id", job.ID, "error", err)
	}
}

// Backoff returns base*2^attempts.
func Backoff(base time.Duration, attempts int32) time.Duration {
	return base * time.Duration(int64(1)<<attempts)
}
