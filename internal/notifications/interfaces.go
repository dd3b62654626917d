package notifications

import (
	"context"
	"time"

	"loyalty-server/internal/store"
)

// DispatchStore defines the store reads the dispatcher needs per customer
type DispatchStore interface {
	ListBusinessCustomerIDs(ctx context.Context, businessID string) ([]string, error)
	GetCustomer(ctx context.Context, customerID string) (store.Customer, error)
	LastStampAt(ctx context.Context, customerID, businessID string) (time.Time, bool, error)
}

// Queue is the outbound hand-off to the external delivery collaborator
type Queue interface {
	Enqueue(ctx context.Context, msg store.NotificationMessage) error
}

// Drainer is implemented by queues the delivery collaborator pops from directly
type Drainer interface {
	Drain(ctx context.Context, max int) ([]store.NotificationMessage, error)
}

// OutboundStore is the store-backed outbound list
type OutboundStore interface {
	EnqueueNotification(ctx context.Context, msg store.NotificationMessage) error
	DrainNotifications(ctx context.Context, max int) ([]store.NotificationMessage, error)
}

// JSONPublisher is satisfied by the Kafka producer
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, value interface{}, headers map[string]string) error
}
