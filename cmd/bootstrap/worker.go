package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"stay-booking/internal/infra/broker/kafka"
	"stay-booking/internal/infra/outbox"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartOutboxWorker,
	),
)

func StartOutboxWorker(
	lc fx.Lifecycle,
	cfg config.Config,
	logger *slog.Logger,
	uow shared.UnitOfWork,
	store outbox.Store,
	producer *kafka.Producer,
	clk clock.Clock,
) {
	if producer == nil {
		logger.Info("outbox worker disabled", "reason", "KAFKA_BROKERS not set")
		return
	}

	worker := &outbox.Worker{
		UoW:         uow,
		Store:       store,
		Producer:    producer,
		Clock:       clk,
		Interval:    cfg.Outbox.Interval,
		BatchSize:   cfg.Outbox.BatchSize,
		TopicPrefix: cfg.Kafka.TopicPrefix,
		Source:      cfg.Outbox.Source,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("outbox worker stopped", "error", err)
				}
			}()
			logger.Info("outbox worker started", "interval", worker.Interval, "batch_size", worker.BatchSize)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
