package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const otelAttrEventKey = "event.key"

// Publisher pushes domain events (booking submitted, status changed) to a
// Kafka topic for downstream consumers. It is a no-op when Kafka is not
// configured.
type Publisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

type kafkaPublisher struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

func (p *kafkaPublisher) Publish(ctx context.Context, key string, payload any) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrEventKey, key)

	value, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to marshal event payload")

		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to publish event")

		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ string, _ any) error {
	return nil
}

func New(cfg *config.Config, otl otel.Otel) Publisher {
	if !cfg.Events.Kafka.Enable || len(cfg.Events.Kafka.Brokers) == 0 {
		log.Info().Msg("Event publishing disabled")

		return noopPublisher{}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Events.Kafka.Brokers...),
		Topic:                  cfg.Events.Kafka.Topic,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	log.Info().Str("topic", cfg.Events.Kafka.Topic).Msg("Event publisher initialized")

	return &kafkaPublisher{
		writer: writer,
		otel:   otl,
	}
}
