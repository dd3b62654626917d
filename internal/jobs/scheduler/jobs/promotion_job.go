package jobs

import (
	"context"
	"fmt"
	"time"

	campaignProcessor "loyalty-server/internal/campaign/processor"
	"loyalty-server/internal/observability"
)

// DefaultPromotionInterval is used when no interval is configured
const DefaultPromotionInterval = time.Minute

// Promoter activates scheduled campaigns whose start date has passed
type Promoter interface {
	PromoteDueCampaigns(ctx context.Context, now time.Time, limit int) (campaignProcessor.PromotionResult, error)
}

// PromotionJob sweeps due scheduled campaigns on a fixed interval
type PromotionJob struct {
	promoter Promoter
	logger   *observability.Logger
	interval time.Duration
	batch    int
	now      func() time.Time
}

func NewPromotionJob(promoter Promoter, logger *observability.Logger, interval time.Duration) *PromotionJob {
	if interval <= 0 {
		interval = DefaultPromotionInterval
	}
	return &PromotionJob{
		promoter: promoter,
		logger:   logger,
		interval: interval,
		batch:    campaignProcessor.DefaultPromotionBatch,
		now:      time.Now,
	}
}

func (j *PromotionJob) Name() string {
	return "campaign_promotion"
}

func (j *PromotionJob) Interval() time.Duration {
	return j.interval
}

// Run promotes batches until a sweep comes back short of a full batch
func (j *PromotionJob) Run(ctx context.Context) error {
	for {
		result, err := j.promoter.PromoteDueCampaigns(ctx, j.now(), j.batch)
		if err != nil {
			return fmt.Errorf("failed to promote due campaigns: %w", err)
		}
		if len(result.Promoted)+result.Skipped+result.Failed < j.batch || len(result.Promoted) == 0 {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
