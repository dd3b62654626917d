package processor

import (
	"context"

	"loyalty-server/internal/store"
)

// LedgerStore defines the store operations required by LedgerProcessor
type LedgerStore interface {
	UpsertCustomer(ctx context.Context, customer store.Customer) (store.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (store.Customer, error)
	UpsertBusiness(ctx context.Context, business store.Business) (store.Business, error)
	GetBusiness(ctx context.Context, businessID string) (store.Business, error)
	EnrollCustomer(ctx context.Context, businessID, customerID string) error
	AppendStamp(ctx context.Context, params store.AppendStampParams) (store.AppendStampResult, error)
	StampBalance(ctx context.Context, customerID, businessID string) (int, error)
	ListStamps(ctx context.Context, customerID, businessID string) ([]store.StampEvent, error)
	GetDailyStats(ctx context.Context, day string) (store.DailyStats, error)
	AppendTransaction(ctx context.Context, entry store.TransactionLogEntry) error
}

// EventPublisher receives stamp.issued domain events
type EventPublisher interface {
	PublishStampIssued(ctx context.Context, event store.StampEvent, balance int) error
}
