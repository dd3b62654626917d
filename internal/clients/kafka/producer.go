package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"loyalty-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of kafka.Writer the producer needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer handles publishing messages to one Kafka topic
type Producer struct {
	writer MessageWriter
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Topic:    config.Topic,
		Balancer: &kafka.Hash{},
		// Synchronous writes so callers see delivery failures
		Async:        false,
		Compression:  kafka.Snappy,
		BatchSize:    100,
		RequiredAcks: kafka.RequireOne,
	}

	return NewProducerWithWriter(writer, logger)
}

// NewProducerWithWriter wraps an existing writer, e.g. a fake in tests
func NewProducerWithWriter(writer MessageWriter, logger *observability.Logger) *Producer {
	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage represents an event message structure
type EventMessage struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	BusinessID string                 `json:"business_id"`
	CampaignID *string                `json:"campaign_id,omitempty"`
	Data       map[string]interface{} `json:"data"`
	Timestamp  string                 `json:"timestamp"`
}

// PublishEvent publishes an event keyed by business so per-business ordering holds
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_type", Value: event.Type},
		observability.Field{Key: "event_id", Value: event.ID},
	)

	headers := map[string]string{
		"event_type":  event.Type,
		"business_id": event.BusinessID,
	}
	if err := p.PublishJSON(ctx, event.BusinessID, event, headers); err != nil {
		return err
	}

	p.logger.Debug(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

// PublishJSON writes value as a JSON message with the given partition key
func (p *Producer) PublishJSON(ctx context.Context, key string, value interface{}, headers map[string]string) error {
	payload, err := json.Marshal(value)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal kafka message", err)
		return fmt.Errorf("failed to marshal kafka message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
