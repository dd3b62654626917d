package processor

import (
	"context"

	"loyalty-server/internal/store"
)

// RewardStore defines the store operations required by RewardProcessor
type RewardStore interface {
	UpsertReward(ctx context.Context, reward store.Reward) (store.Reward, bool, error)
	GetReward(ctx context.Context, rewardID string) (store.Reward, error)
	ListRewards(ctx context.Context, businessID string) ([]store.Reward, error)
	DeactivateReward(ctx context.Context, rewardID string) (store.Reward, error)
}
