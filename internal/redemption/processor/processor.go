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
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrRewardNotFound       = errors.New("reward not found")
	ErrRewardInactive       = errors.New("reward is not active")
	ErrInsufficientBalance  = errors.New("insufficient stamp balance")
	ErrRedemptionCapReached = errors.New("reward redemption limit reached")
	ErrInvalidInput         = errors.New("invalid redemption request")
)

type RedemptionProcessor struct {
	store     RedemptionStore
	publisher EventPublisher
	retry     retry.Policy
	logger    *observability.Logger
	now       func() time.Time
}

func New(store RedemptionStore, publisher EventPublisher, policy retry.Policy, logger *observability.Logger) RedemptionProcessor {
	return RedemptionProcessor{
		store:     store,
		publisher: publisher,
		retry:     policy,
		logger:    logger,
		now:       time.Now,
	}
}

type RedeemParams struct {
	CustomerID string
	BusinessID string
	RewardID   string
}

type RedeemResult struct {
	Redemption store.Redemption `json:"redemption"`
	NewBalance int              `json:"new_balance"`
}

// Redeem exchanges the reward's stamp threshold for the reward. The store performs the
// eligibility checks and FIFO consumption as one unit, so two concurrent calls against a
// balance that covers only one of them cannot both succeed. Writes are never retried.
func (p *RedemptionProcessor) Redeem(ctx context.Context, params RedeemParams) (RedeemResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: params.CustomerID},
		observability.Field{Key: "business_id", Value: params.BusinessID},
		observability.Field{Key: "reward_id", Value: params.RewardID},
	)

	if strings.TrimSpace(params.CustomerID) == "" || strings.TrimSpace(params.BusinessID) == "" || strings.TrimSpace(params.RewardID) == "" {
		return RedeemResult{}, ErrInvalidInput
	}

	res, err := p.store.Redeem(ctx, store.RedeemParams{
		Redemption: store.Redemption{
			ID:         uuid.NewString(),
			CustomerID: params.CustomerID,
			BusinessID: params.BusinessID,
			RewardID:   params.RewardID,
			RedeemedAt: p.now().UTC(),
			Status:     store.RedemptionStatusCompleted,
		},
	})
	if err != nil {
		if mapped := mapRedeemError(err); mapped != nil {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: mapped.Error()}), "redemption rejected")
			return RedeemResult{}, mapped
		}
		p.logger.Error(ctx, "failed to redeem reward", err)
		return RedeemResult{}, fmt.Errorf("failed to redeem reward: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redemption_id", Value: res.Redemption.ID},
		observability.Field{Key: "new_balance", Value: res.NewBalance},
	)

	if err := p.store.AppendTransaction(ctx, store.TransactionLogEntry{
		Timestamp: res.Redemption.RedeemedAt,
		Action:    store.ActionRedeem,
		Data: store.TransactionData{
			BusinessID: res.Redemption.BusinessID,
			CustomerID: res.Redemption.CustomerID,
			RewardID:   res.Redemption.RewardID,
		},
	}); err != nil {
		p.logger.Error(ctx, "failed to append redemption to transaction log", err)
	}

	if p.publisher != nil {
		if err := p.publisher.PublishRewardRedeemed(ctx, res.Redemption, res.NewBalance); err != nil {
			p.logger.Error(ctx, "failed to publish reward redeemed event", err)
		}
	}

	p.logger.Info(ctx, "reward redeemed")
	return RedeemResult{Redemption: res.Redemption, NewBalance: res.NewBalance}, nil
}

func mapRedeemError(err error) error {
	switch {
	case errors.Is(err, store.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, store.ErrBusinessNotFound):
		return ErrBusinessNotFound
	case errors.Is(err, store.ErrRewardNotFound):
		return ErrRewardNotFound
	case errors.Is(err, store.ErrRewardInactive):
		return ErrRewardInactive
	case errors.Is(err, store.ErrInsufficientBalance):
		return ErrInsufficientBalance
	case errors.Is(err, store.ErrRedemptionCapReached):
		return ErrRedemptionCapReached
	default:
		return nil
	}
}

// ListRedemptions returns the pair's redemption history, newest first
func (p *RedemptionProcessor) ListRedemptions(ctx context.Context, customerID, businessID string) ([]store.Redemption, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID},
		observability.Field{Key: "business_id", Value: businessID},
	)

	redemptions, err := retry.Do(ctx, p.retry, func(ctx context.Context) ([]store.Redemption, error) {
		return p.store.ListRedemptions(ctx, customerID, businessID)
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list redemptions", err)
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}
	return redemptions, nil
}
