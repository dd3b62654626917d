package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/retry"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrRewardNotFound   = errors.New("reward not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidReward    = errors.New("invalid reward")
	ErrRewardIDConflict = errors.New("reward id belongs to another business")
)

type RewardProcessor struct {
	store  RewardStore
	retry  retry.Policy
	logger *observability.Logger
	now    func() time.Time
}

func New(store RewardStore, policy retry.Policy, logger *observability.Logger) RewardProcessor {
	return RewardProcessor{
		store:  store,
		retry:  policy,
		logger: logger,
		now:    time.Now,
	}
}

// UpsertRewardParams is a full replacement of the reward's mutable fields.
// An empty ID creates a new reward with a generated identity.
type UpsertRewardParams struct {
	ID             string
	Name           string
	Description    *string
	StampsRequired int
	IsActive       *bool
	MaxRedemptions *int
}

type UpsertRewardResult struct {
	Reward  store.Reward `json:"reward"`
	Created bool         `json:"created"`
}

// UpsertReward creates the reward or replaces every mutable field of an existing one.
// Redemption counters and identity survive the replacement.
func (p *RewardProcessor) UpsertReward(ctx context.Context, businessID string, params UpsertRewardParams) (UpsertRewardResult, error) {
	if params.ID == "" {
		params.ID = uuid.NewString()
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "reward_id", Value: params.ID},
	)

	if err := validateReward(businessID, params); err != nil {
		return UpsertRewardResult{}, err
	}

	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	now := p.now().UTC()
	reward, created, err := p.store.UpsertReward(ctx, store.Reward{
		ID:             params.ID,
		BusinessID:     businessID,
		Name:           params.Name,
		Description:    params.Description,
		StampsRequired: params.StampsRequired,
		IsActive:       isActive,
		MaxRedemptions: params.MaxRedemptions,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBusinessNotFound):
			return UpsertRewardResult{}, ErrBusinessNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return UpsertRewardResult{}, ErrRewardIDConflict
		}
		p.logger.Error(ctx, "failed to upsert reward", err)
		return UpsertRewardResult{}, fmt.Errorf("failed to upsert reward: %w", err)
	}

	if created {
		p.logger.Info(ctx, "reward created")
	} else {
		p.logger.Info(ctx, "reward replaced")
	}
	return UpsertRewardResult{Reward: reward, Created: created}, nil
}

func validateReward(businessID string, params UpsertRewardParams) error {
	if strings.TrimSpace(businessID) == "" || strings.TrimSpace(params.Name) == "" {
		return ErrInvalidReward
	}
	if params.StampsRequired < 1 {
		return ErrInvalidReward
	}
	if params.MaxRedemptions != nil && *params.MaxRedemptions < 0 {
		return ErrInvalidReward
	}
	return nil
}

// GetReward returns the reward if it belongs to businessID
func (p *RewardProcessor) GetReward(ctx context.Context, businessID, rewardID string) (store.Reward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "reward_id", Value: rewardID},
	)

	reward, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Reward, error) {
		return p.store.GetReward(ctx, rewardID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return store.Reward{}, fmt.Errorf("failed to get reward: %w", err)
	}

	if reward.BusinessID != businessID {
		return store.Reward{}, ErrRewardNotFound
	}
	return reward, nil
}

func (p *RewardProcessor) ListRewards(ctx context.Context, businessID string) ([]store.Reward, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_id", Value: businessID})

	rewards, err := retry.Do(ctx, p.retry, func(ctx context.Context) ([]store.Reward, error) {
		return p.store.ListRewards(ctx, businessID)
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

// DeactivateReward soft-deletes the reward; redemption history and counters are kept
func (p *RewardProcessor) DeactivateReward(ctx context.Context, businessID, rewardID string) (store.Reward, error) {
	if _, err := p.GetReward(ctx, businessID, rewardID); err != nil {
		return store.Reward{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "reward_id", Value: rewardID},
	)

	reward, err := p.store.DeactivateReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Reward{}, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to deactivate reward", err)
		return store.Reward{}, fmt.Errorf("failed to deactivate reward: %w", err)
	}

	p.logger.Info(ctx, "reward deactivated")
	return reward, nil
}
