package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loyalty-server/internal/campaign/audience"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/retry"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrBusinessNotFound      = errors.New("business not found")
	ErrInvalidCampaign       = errors.New("invalid campaign")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrInvalidAudience       = errors.New("invalid target audience")
	ErrCampaignTerminal      = errors.New("campaign is completed or cancelled")
)

// errNotScheduled aborts a promotion whose campaign left the scheduled state after it was indexed
var errNotScheduled = errors.New("campaign is no longer scheduled")

// DefaultPromotionBatch bounds how many due campaigns one sweep promotes
const DefaultPromotionBatch = 100

type CampaignProcessor struct {
	store     CampaignStore
	trigger   DispatchTrigger
	publisher EventPublisher
	retry     retry.Policy
	logger    *observability.Logger
	now       func() time.Time
}

func New(store CampaignStore, trigger DispatchTrigger, publisher EventPublisher, policy retry.Policy, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:     store,
		trigger:   trigger,
		publisher: publisher,
		retry:     policy,
		logger:    logger,
		now:       time.Now,
	}
}

type CreateCampaignParams struct {
	BusinessID          string
	Name                string
	Type                string
	StartDate           time.Time
	EndDate             time.Time
	TargetAudience      string
	Conditions          map[string]any
	NotificationMessage *string
}

// CreateCampaign stores a campaign as scheduled when it starts in the future, otherwise active.
// An active campaign with a message is dispatched immediately.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: params.BusinessID},
		observability.Field{Key: "campaign_name", Value: params.Name},
	)

	if err := validateCampaign(params); err != nil {
		return store.Campaign{}, err
	}

	if _, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Business, error) {
		return p.store.GetBusiness(ctx, params.BusinessID)
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to get business", err)
		return store.Campaign{}, fmt.Errorf("failed to get business: %w", err)
	}

	now := p.now().UTC()
	campaign := store.Campaign{
		ID:                  uuid.NewString(),
		BusinessID:          params.BusinessID,
		Name:                params.Name,
		Type:                params.Type,
		StartDate:           params.StartDate.UTC(),
		EndDate:             params.EndDate.UTC(),
		Status:              store.CampaignStatusActive,
		TargetAudience:      params.TargetAudience,
		Conditions:          params.Conditions,
		NotificationMessage: params.NotificationMessage,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if campaign.StartDate.After(now) {
		campaign.Status = store.CampaignStatusScheduled
	}
	dispatch := markDispatch(&campaign, now)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "status", Value: campaign.Status},
	)

	if err := p.store.CreateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, store.ErrBusinessNotFound) {
			return store.Campaign{}, ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	p.logger.Info(ctx, "campaign created")
	if dispatch {
		p.triggerDispatch(ctx, campaign)
	}
	return campaign, nil
}

func validateCampaign(params CreateCampaignParams) error {
	if strings.TrimSpace(params.BusinessID) == "" ||
		strings.TrimSpace(params.Name) == "" ||
		strings.TrimSpace(params.Type) == "" ||
		params.StartDate.IsZero() || params.EndDate.IsZero() {
		return ErrInvalidCampaign
	}
	if params.EndDate.Before(params.StartDate) {
		return ErrInvalidCampaign
	}
	if !audience.Valid(params.TargetAudience) {
		return ErrInvalidAudience
	}
	return nil
}

// markDispatch stamps the dispatch marker when the campaign is active with a message and has
// never been dispatched. The marker is written in the same update as the status.
func markDispatch(c *store.Campaign, now time.Time) bool {
	if c.Status != store.CampaignStatusActive || c.NotificationMessage == nil || *c.NotificationMessage == "" {
		return false
	}
	if c.DispatchedAt != nil {
		return false
	}
	c.DispatchedAt = &now
	return true
}

func (p *CampaignProcessor) triggerDispatch(ctx context.Context, campaign store.Campaign) {
	if p.trigger == nil {
		return
	}
	if err := p.trigger.TriggerDispatch(ctx, campaign); err != nil {
		p.logger.Error(ctx, "failed to trigger campaign dispatch", err)
	}
}

func IsValidStatus(status string) bool {
	switch status {
	case store.CampaignStatusDraft, store.CampaignStatusScheduled, store.CampaignStatusActive,
		store.CampaignStatusPaused, store.CampaignStatusCompleted, store.CampaignStatusCancelled:
		return true
	}
	return false
}

type SetCampaignStatusParams struct {
	CampaignID string
	// BusinessID scopes the change; empty skips the ownership check
	BusinessID string
	Status     string
}

// SetCampaignStatus moves a campaign to any known status unless it is already terminal
func (p *CampaignProcessor) SetCampaignStatus(ctx context.Context, params SetCampaignStatusParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: params.CampaignID},
		observability.Field{Key: "status", Value: params.Status},
	)

	if !IsValidStatus(params.Status) {
		return store.Campaign{}, ErrInvalidCampaignStatus
	}

	var (
		previous string
		dispatch bool
	)
	updated, err := p.store.UpdateCampaign(ctx, params.CampaignID, func(c *store.Campaign) error {
		dispatch = false
		if params.BusinessID != "" && c.BusinessID != params.BusinessID {
			return ErrCampaignNotFound
		}
		if c.IsTerminal() {
			return ErrCampaignTerminal
		}
		now := p.now().UTC()
		previous = c.Status
		c.Status = params.Status
		c.UpdatedAt = now
		dispatch = markDispatch(c, now)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCampaignNotFound), errors.Is(err, store.ErrNotFound):
			return store.Campaign{}, ErrCampaignNotFound
		case errors.Is(err, ErrCampaignTerminal), errors.Is(err, store.ErrCampaignTerminal):
			return store.Campaign{}, ErrCampaignTerminal
		}
		p.logger.Error(ctx, "failed to update campaign status", err)
		return store.Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "previous_status", Value: previous})
	p.logger.Info(ctx, "campaign status changed")

	p.publishStatusChanged(ctx, updated, previous)
	if dispatch {
		p.triggerDispatch(ctx, updated)
	}
	return updated, nil
}

func (p *CampaignProcessor) publishStatusChanged(ctx context.Context, campaign store.Campaign, previous string) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishCampaignStatusChanged(ctx, campaign, previous); err != nil {
		p.logger.Error(ctx, "failed to publish campaign status change", err)
	}
}

// GetCampaign returns the campaign; a non-empty businessID must own it
func (p *CampaignProcessor) GetCampaign(ctx context.Context, businessID, campaignID string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID})

	campaign, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Campaign, error) {
		return p.store.GetCampaign(ctx, campaignID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	if businessID != "" && campaign.BusinessID != businessID {
		return store.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, businessID string) ([]store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_id", Value: businessID})

	campaigns, err := retry.Do(ctx, p.retry, func(ctx context.Context) ([]store.Campaign, error) {
		return p.store.ListCampaigns(ctx, businessID)
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}
