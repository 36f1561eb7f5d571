package repository

import (
	"context"
	"encoding/json"
	"time"

	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	OutboxStatusQueued = "queued"
	OutboxStatusSent   = "sent"
	OutboxStatusFailed = "failed"
)

type OutboxQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	ClaimDueOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventRetryParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, event shared.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode outbox payload")
	}

	runAt := event.OccurredAt
	if runAt.IsZero() {
		runAt = time.Now()
	}

	params := sqlc.CreateOutboxEventParams{
		Topic:       event.Topic(),
		AggregateID: event.AggregateID,
		Kind:        event.Kind,
		Payload:     payload,
		RunAt:       pgconv.TimeToPgtype(runAt),
	}
	if err := r.queries.CreateOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}

// ClaimDue locks up to limit queued rows for the duration of tx.
func (r *OutboxRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error) {
	rows, err := r.queries.ClaimDueOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox events", err)
	}
	return rows, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

// MarkRetry records lastError and reschedules the row. A terminal row is stored as failed.
func (r *OutboxRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time, terminal bool) error {
	status := OutboxStatusQueued
	if terminal {
		status = OutboxStatusFailed
	}
	params := sqlc.MarkOutboxEventRetryParams{
		Status:    status,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
		ID:        id,
	}
	if err := r.queries.MarkOutboxEventRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox event", err)
	}
	return nil
}
