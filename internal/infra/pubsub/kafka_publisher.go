package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pricing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaBatchTimeout caps how long a write waits to fill a batch. One event is written per pricing batch.
const kafkaBatchTimeout = 10 * time.Millisecond

// kafkaPublisher implements EventPublisher on a Kafka topic
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}

	return newKafkaPublisher(writer, logger)
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishPriceChangeEvent writes one message keyed by operation
func (p *kafkaPublisher) PublishPriceChangeEvent(ctx context.Context, event *service.PriceChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(event.Operation),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to write event %s", event.EventID)
	}

	p.logger.Info("[Kafka] Price change event published",
		slog.String("event_id", event.EventID),
		slog.String("operation", event.Operation),
		slog.Int("updated_count", event.UpdatedCount),
	)

	return nil
}

// Close flushes pending writes and closes the connection
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
