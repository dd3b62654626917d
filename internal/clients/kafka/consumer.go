package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"loyalty-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the subset of kafka.Reader the consumer needs
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer handles consuming events from Kafka
type Consumer struct {
	reader MessageReader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		StartOffset: kafka.FirstOffset,
		// Manual commit
		CommitInterval: 0,
	})

	return NewConsumerWithReader(reader, logger)
}

// NewConsumerWithReader wraps an existing reader, e.g. a fake in tests
func NewConsumerWithReader(reader MessageReader, logger *observability.Logger) *Consumer {
	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// ConsumeEvents processes events until ctx is done. Handler failures leave the message
// uncommitted so it is redelivered; undecodable messages are committed and skipped.
func (c *Consumer) ConsumeEvents(ctx context.Context, handler func(context.Context, EventMessage) error) error {
	c.logger.Info(ctx, "Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info(ctx, "Stopping Kafka consumer")
				return ctx.Err()
			}
			c.logger.Error(ctx, "failed to fetch message from kafka", err)
			continue
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error(ctx, "failed to unmarshal event", err)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error(ctx, "failed to commit message", err)
			}
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: event.Type},
			observability.Field{Key: "event_id", Value: event.ID},
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)

		if err := handler(msgCtx, event); err != nil {
			c.logger.Error(msgCtx, "failed to process event", err)
			continue
		}

		if err := c.reader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.Error(msgCtx, "failed to commit message", err)
		}

		c.logger.Debug(msgCtx, fmt.Sprintf("successfully processed event %s", event.Type))
	}
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
