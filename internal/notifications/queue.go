package notifications

import (
	"context"
	"errors"

	"loyalty-server/internal/store"
)

var ErrDrainUnsupported = errors.New("notification queue cannot be drained from this service")

// StoreQueue appends to the shared store's outbound list
type StoreQueue struct {
	store OutboundStore
}

func NewStoreQueue(store OutboundStore) *StoreQueue {
	return &StoreQueue{store: store}
}

func (q *StoreQueue) Enqueue(ctx context.Context, msg store.NotificationMessage) error {
	return q.store.EnqueueNotification(ctx, msg)
}

// Drain pops up to max messages in enqueue order; max <= 0 pops everything
func (q *StoreQueue) Drain(ctx context.Context, max int) ([]store.NotificationMessage, error) {
	return q.store.DrainNotifications(ctx, max)
}

// KafkaQueue publishes each message to the notifications topic, keyed by customer so one
// customer's messages stay ordered within a partition
type KafkaQueue struct {
	producer JSONPublisher
}

func NewKafkaQueue(producer JSONPublisher) *KafkaQueue {
	return &KafkaQueue{producer: producer}
}

func (q *KafkaQueue) Enqueue(ctx context.Context, msg store.NotificationMessage) error {
	return q.producer.PublishJSON(ctx, msg.CustomerID, msg, map[string]string{
		"type":        msg.Type,
		"business_id": msg.BusinessID,
		"campaign_id": msg.CampaignID,
	})
}

// Drain pops queued messages when q supports it
func Drain(ctx context.Context, q Queue, max int) ([]store.NotificationMessage, error) {
	d, ok := q.(Drainer)
	if !ok {
		return nil, ErrDrainUnsupported
	}
	return d.Drain(ctx, max)
}
