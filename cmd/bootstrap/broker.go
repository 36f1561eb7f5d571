package bootstrap

import (
	"context"

	"stay-booking/internal/infra/broker/kafka"
	"stay-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewKafkaProducer,
	),
)

// NewKafkaProducer returns nil when no brokers are configured.
func NewKafkaProducer(lc fx.Lifecycle, cfg config.Config) (*kafka.Producer, error) {
	if !cfg.Kafka.Enabled() {
		return nil, nil
	}
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer, nil
}
