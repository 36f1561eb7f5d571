package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxAttempts is the number of publish attempts before a row is parked as failed.
const MaxAttempts = 10

var ErrWorkerNotConfigured = errs.New("outbox: worker missing dependencies")

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type Store interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time, terminal bool) error
}

type Worker struct {
	UoW         shared.UnitOfWork
	Store       Store
	Producer    Producer
	Clock       clock.Clock
	Interval    time.Duration
	BatchSize   int32
	TopicPrefix string
	Source      string
	Backoff     []time.Duration
}

var defaultBackoff = []time.Duration{
	time.Second,
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
	10 * time.Minute,
}

func (w *Worker) Run(ctx context.Context) error {
	if w.UoW == nil || w.Store == nil || w.Producer == nil {
		return ErrWorkerNotConfigured
	}
	ticker := time.NewTicker(w.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.ProcessOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox batch failed", "error", err.Error())
			}
		}
	}
}

// ProcessOnce publishes one batch of due events and returns how many were sent.
func (w *Worker) ProcessOnce(ctx context.Context) (int, error) {
	sent := 0
	err := w.UoW.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		rows, err := w.Store.ClaimDue(ctx, tx.DB(), w.batchSize())
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := w.publish(ctx, row); err != nil {
				terminal := int(row.Attempts)+1 >= MaxAttempts
				slog.Warn("outbox publish failed",
					"event_id", row.ID.String(),
					"kind", row.Kind,
					"attempts", row.Attempts+1,
					"terminal", terminal,
					"error", err.Error())
				if merr := w.Store.MarkRetry(ctx, tx.DB(), row.ID, err.Error(), w.nextRetry(int(row.Attempts)), terminal); merr != nil {
					return merr
				}
				continue
			}
			if err := w.Store.MarkSent(ctx, tx.DB(), row.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (w *Worker) publish(ctx context.Context, row sqlc.OutboxEvents) error {
	payload, headers, err := w.formatPayload(row)
	if err != nil {
		return err
	}
	return w.Producer.Publish(ctx, w.topicFor(row.Topic), row.AggregateID.String(), payload, headers)
}

// formatPayload wraps the stored payload in a CloudEvents 1.0 JSON envelope.
func (w *Worker) formatPayload(row sqlc.OutboxEvents) ([]byte, map[string]string, error) {
	data := map[string]any{}
	if err := json.Unmarshal(row.Payload, &data); err != nil {
		return nil, nil, errs.Wrap(err, "outbox payload is not a JSON object")
	}
	evt := map[string]any{
		"specversion":     "1.0",
		"id":              row.ID.String(),
		"type":            row.Kind + ".v1",
		"source":          w.source(),
		"subject":         row.AggregateID.String(),
		"time":            row.RunAt.Time.UTC().Format(time.RFC3339Nano),
		"datacontenttype": "application/json",
		"data":            data,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	headers := map[string]string{
		"content-type": "application/cloudevents+json",
		"ce-type":      row.Kind + ".v1",
	}
	return payload, headers, nil
}

func (w *Worker) topicFor(topic string) string {
	return w.TopicPrefix + topic
}

func (w *Worker) interval() time.Duration {
	if w.Interval <= 0 {
		return 500 * time.Millisecond
	}
	return w.Interval
}

func (w *Worker) batchSize() int32 {
	if w.BatchSize <= 0 {
		return 50
	}
	return w.BatchSize
}

func (w *Worker) now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock.Now()
}

func (w *Worker) nextRetry(attempts int) time.Time {
	backoff := w.Backoff
	if len(backoff) == 0 {
		backoff = defaultBackoff
	}
	if attempts < len(backoff) {
		return w.now().Add(backoff[attempts])
	}
	return w.now().Add(backoff[len(backoff)-1])
}

func (w *Worker) source() string {
	if w.Source != "" {
		return w.Source
	}
	return "app://stay-booking"
}
