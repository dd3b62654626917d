package processor

import (
	"context"
	"errors"
	"time"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

type PromotionResult struct {
	Promoted []string `json:"promoted"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
}

// PromoteDueCampaigns flips scheduled campaigns whose start date has passed to active.
// Each index entry is claimed before promotion, so concurrent sweeps never promote or
// dispatch the same campaign twice.
func (p *CampaignProcessor) PromoteDueCampaigns(ctx context.Context, now time.Time, limit int) (PromotionResult, error) {
	if limit <= 0 {
		limit = DefaultPromotionBatch
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "sweep_at", Value: now.UTC()})

	due, err := p.store.DueScheduledCampaigns(ctx, now, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to read scheduled campaign index", err)
		return PromotionResult{}, err
	}

	result := PromotionResult{Promoted: make([]string, 0, len(due))}
	for _, id := range due {
		promoted, err := p.promote(observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id}), id, now)
		switch {
		case err != nil:
			result.Failed++
		case promoted:
			result.Promoted = append(result.Promoted, id)
		default:
			result.Skipped++
		}
	}

	if len(due) > 0 {
		p.logger.Metrics(ctx,
			observability.MetricField{Key: "campaigns_due", Value: len(due)},
			observability.MetricField{Key: "campaigns_promoted", Value: len(result.Promoted)},
			observability.MetricField{Key: "campaigns_failed", Value: result.Failed},
		)
	}
	return result, nil
}

func (p *CampaignProcessor) promote(ctx context.Context, campaignID string, now time.Time) (bool, error) {
	claimed, err := p.store.ClaimScheduledCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to claim scheduled campaign", err)
		return false, err
	}
	if !claimed {
		return false, nil
	}

	var (
		promoted bool
		dispatch bool
	)
	updated, err := p.store.UpdateCampaign(ctx, campaignID, func(c *store.Campaign) error {
		promoted, dispatch = false, false
		if c.Status != store.CampaignStatusScheduled {
			return errNotScheduled
		}
		// start moved into the future after indexing; writing it back re-indexes it
		if c.StartDate.After(now) {
			return nil
		}
		c.Status = store.CampaignStatusActive
		c.UpdatedAt = now.UTC()
		promoted = true
		dispatch = markDispatch(c, now.UTC())
		return nil
	})
	if err != nil {
		if errors.Is(err, errNotScheduled) || errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		p.logger.Error(ctx, "failed to promote campaign", err)
		p.restoreSchedule(ctx, campaignID)
		return false, err
	}
	if !promoted {
		return false, nil
	}

	p.logger.Info(ctx, "campaign promoted to active")
	p.publishStatusChanged(ctx, updated, store.CampaignStatusScheduled)
	if dispatch {
		p.triggerDispatch(ctx, updated)
	}
	return true, nil
}

// restoreSchedule puts a claimed campaign back in the index after a failed promotion so a later sweep retries it
func (p *CampaignProcessor) restoreSchedule(ctx context.Context, campaignID string) {
	_, err := p.store.UpdateCampaign(ctx, campaignID, func(c *store.Campaign) error {
		if c.Status != store.CampaignStatusScheduled {
			return errNotScheduled
		}
		return nil
	})
	if err != nil && !errors.Is(err, errNotScheduled) {
		p.logger.Error(ctx, "failed to restore campaign schedule", err)
	}
}
