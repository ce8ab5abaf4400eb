package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/credbureau/scoring-service/pkg/events"
	"github.com/credbureau/scoring-service/pkg/kafka"
)

// KafkaPublisher implements port.EventPublisher on top of the shared Kafka
// producer. Events are JSON-encoded, keyed by aggregate ID, with the event
// type carried in a header.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates a Kafka-backed event publisher.
func NewKafkaPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to the configured topic.
func (p *KafkaPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("messaging: marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID().String()),
			Value: payload,
			Headers: map[string]string{
				"event-type":   evt.EventType(),
				"content-type": "application/json",
			},
		})

		p.logger.Debug("publishing event",
			slog.String("event_type", evt.EventType()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(payload)),
		)
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("messaging: publish %d events: %w", len(messages), err)
	}
	return nil
}
