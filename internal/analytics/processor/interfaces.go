package processor

import (
	"context"
	"time"

	"loyalty-server/internal/store"
)

// AnalyticsStore defines the transaction log operations required by AnalyticsProcessor
type AnalyticsStore interface {
	AppendTransaction(ctx context.Context, entry store.TransactionLogEntry) error
	ListTransactions(ctx context.Context, action string, since time.Time) ([]store.TransactionLogEntry, error)
}
