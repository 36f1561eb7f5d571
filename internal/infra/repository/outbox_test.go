//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/shared"
	repositorymock "stay-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	occurred := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	event := shared.OutboxEvent{
		Aggregate:   "booking",
		AggregateID: bookingID,
		Kind:        "booking.requested",
		Payload:     shared.BookingEventPayload{BookingID: bookingID, Status: "PENDING"},
		OccurredAt:  occurred,
	}

	t.Run("success: payload encoded with topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateOutboxEvent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error {
				assert.Equal(t, "booking.events.v1", arg.Topic)
				assert.Equal(t, bookingID, arg.AggregateID)
				assert.Equal(t, "booking.requested", arg.Kind)
				assert.Contains(t, string(arg.Payload), `"status":"PENDING"`)
				assert.True(t, occurred.Equal(pgconv.TimeFromPgtype(arg.RunAt)))
				return nil
			})

		err := repository.NewOutboxRepository(mockQueries, mockDB).Enqueue(ctx, mockDB, event)

		require.NoError(t, err)
	})

	t.Run("error: insert failure is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateOutboxEvent(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repository.NewOutboxRepository(mockQueries, mockDB).Enqueue(ctx, mockDB, event)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestOutboxRepository_MarkRetry(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	runAt := time.Date(2026, 1, 10, 12, 5, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		terminal   bool
		wantStatus string
	}{
		{name: "success: retry keeps row queued", terminal: false, wantStatus: repository.OutboxStatusQueued},
		{name: "success: terminal failure parks row", terminal: true, wantStatus: repository.OutboxStatusFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().MarkOutboxEventRetry(ctx, mockDB, sqlc.MarkOutboxEventRetryParams{
				Status:    tc.wantStatus,
				LastError: pgconv.StringToPgtype("broker down"),
				RunAt:     pgconv.TimeToPgtype(runAt),
				ID:        id,
			}).Return(nil)

			err := repository.NewOutboxRepository(mockQueries, mockDB).MarkRetry(ctx, mockDB, id, "broker down", runAt, tc.terminal)

			assert.NoError(t, err)
		})
	}
}
