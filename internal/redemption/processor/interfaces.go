package processor

import (
	"context"

	"loyalty-server/internal/store"
)

// RedemptionStore defines the store operations required by RedemptionProcessor.
// Redeem must check and consume atomically per (customer, business) pair.
type RedemptionStore interface {
	Redeem(ctx context.Context, params store.RedeemParams) (store.RedeemResult, error)
	ListRedemptions(ctx context.Context, customerID, businessID string) ([]store.Redemption, error)
	AppendTransaction(ctx context.Context, entry store.TransactionLogEntry) error
}

// EventPublisher receives reward.redeemed domain events
type EventPublisher interface {
	PublishRewardRedeemed(ctx context.Context, redemption store.Redemption, newBalance int) error
}
