package jobs

import (
	"context"
	"errors"
	"fmt"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/hibiken/asynq"
)

// Enqueuer is satisfied by *asynq.Client
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client Enqueuer
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	return NewClientWithEnqueuer(asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}), logger)
}

// NewClientWithEnqueuer wraps an existing enqueuer
func NewClientWithEnqueuer(enqueuer Enqueuer, logger *observability.Logger) *Client {
	return &Client{
		client: enqueuer,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// TriggerDispatch enqueues the notification fan-out for an activated campaign.
// A task already queued for the campaign counts as success.
func (c *Client) TriggerDispatch(ctx context.Context, campaign store.Campaign) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID})

	task, err := NewCampaignDispatchTask(CampaignDispatchPayload{
		CampaignID: campaign.ID,
		BusinessID: campaign.BusinessID,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign dispatch task", err)
		return fmt.Errorf("failed to create campaign dispatch task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
		c.logger.Info(ctx, "campaign dispatch task already queued")
		return nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue campaign dispatch task", err)
		return fmt.Errorf("failed to enqueue campaign dispatch task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign dispatch task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueuePromotion enqueues a one-off promotion sweep
func (c *Client) EnqueuePromotion(ctx context.Context, limit int) error {
	task, err := NewCampaignPromoteTask(CampaignPromotePayload{Limit: limit})
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign promote task", err)
		return fmt.Errorf("failed to create campaign promote task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue campaign promote task", err)
		return fmt.Errorf("failed to enqueue campaign promote task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign promote task: %s", info.ID))
	return nil
}
