package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	campaignProcessor "loyalty-server/internal/campaign/processor"
	"loyalty-server/internal/jobs"
	"loyalty-server/internal/notifications"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/hibiken/asynq"
)

// CampaignLookup loads the campaign a dispatch task refers to
type CampaignLookup interface {
	GetCampaign(ctx context.Context, campaignID string) (store.Campaign, error)
}

// CampaignDispatcher fans a campaign out to its audience
type CampaignDispatcher interface {
	DispatchCampaign(ctx context.Context, businessID string, campaign store.Campaign) (notifications.DispatchResult, error)
}

// CampaignPromoter activates scheduled campaigns whose start date has passed
type CampaignPromoter interface {
	PromoteDueCampaigns(ctx context.Context, now time.Time, limit int) (campaignProcessor.PromotionResult, error)
}

// CampaignWorker handles campaign dispatch and promotion tasks
type CampaignWorker struct {
	campaigns  CampaignLookup
	dispatcher CampaignDispatcher
	promoter   CampaignPromoter
	logger     *observability.Logger
	now        func() time.Time
}

// NewCampaignWorker creates a new campaign worker
func NewCampaignWorker(campaigns CampaignLookup, dispatcher CampaignDispatcher, promoter CampaignPromoter, logger *observability.Logger) *CampaignWorker {
	return &CampaignWorker{
		campaigns:  campaigns,
		dispatcher: dispatcher,
		promoter:   promoter,
		logger:     logger,
		now:        time.Now,
	}
}

// ProcessDispatchTask processes a campaign:dispatch task
func (w *CampaignWorker) ProcessDispatchTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.CampaignDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal campaign dispatch payload", err)
		return fmt.Errorf("failed to unmarshal campaign dispatch payload: %w: %w", err, asynq.SkipRetry)
	}
	return w.dispatch(ctx, payload)
}

func (w *CampaignWorker) dispatch(ctx context.Context, payload jobs.CampaignDispatchPayload) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: payload.CampaignID},
		observability.Field{Key: "business_id", Value: payload.BusinessID},
	)

	campaign, err := w.campaigns.GetCampaign(ctx, payload.CampaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "campaign for dispatch task no longer exists")
			return fmt.Errorf("campaign %s not found: %w", payload.CampaignID, asynq.SkipRetry)
		}
		w.logger.Error(ctx, "failed to load campaign for dispatch", err)
		return fmt.Errorf("failed to load campaign: %w", err)
	}

	result, err := w.dispatcher.DispatchCampaign(ctx, campaign.BusinessID, campaign)
	if err != nil {
		w.logger.Error(ctx, "failed to dispatch campaign", err)
		return fmt.Errorf("failed to dispatch campaign: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("dispatched campaign to %d of %d customers", result.Queued, result.Customers))
	return nil
}

// ProcessPromoteTask processes a campaign:promote task
func (w *CampaignWorker) ProcessPromoteTask(ctx context.Context, task *asynq.Task) error {
	payload := jobs.CampaignPromotePayload{Limit: campaignProcessor.DefaultPromotionBatch}
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal campaign promote payload", err)
			return fmt.Errorf("failed to unmarshal campaign promote payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	result, err := w.promoter.PromoteDueCampaigns(ctx, w.now(), payload.Limit)
	if err != nil {
		w.logger.Error(ctx, "failed to promote due campaigns", err)
		return fmt.Errorf("failed to promote due campaigns: %w", err)
	}
	if result.Failed > 0 {
		// failed campaigns were put back on the schedule; the next sweep picks them up
		w.logger.Warn(ctx, fmt.Sprintf("%d campaigns failed promotion", result.Failed))
	}
	return nil
}
