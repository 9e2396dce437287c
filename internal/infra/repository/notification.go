package repository

import (
	"context"
	"time"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
	RequeueStaleNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.RequeueStaleNotificationJobsParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  jobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue moves up to limit due jobs to processing. Rows locked by another
// worker are skipped.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, r.db, sqlc.MarkNotificationJobSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, runAt time.Time, lastError string, at time.Time) error {
	err := r.queries.RescheduleNotificationJob(ctx, r.db, sqlc.RescheduleNotificationJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgconv.StringToPgtype(lastError),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, at time.Time) error {
	err := r.queries.MarkNotificationJobFailed(ctx, r.db, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(lastError),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

// RequeueStale returns processing jobs abandoned by a crashed worker to the queue.
func (r *NotificationRepository) RequeueStale(ctx context.Context, staleBefore, now time.Time) (int64, error) {
	n, err := r.queries.RequeueStaleNotificationJobs(ctx, r.db, sqlc.RequeueStaleNotificationJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to requeue stale notification jobs", err)
	}
	return n, nil
}
