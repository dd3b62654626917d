package processor

import (
	"context"
	"time"

	"loyalty-server/internal/store"
)

// CampaignStore defines the store operations required by CampaignProcessor
type CampaignStore interface {
	GetBusiness(ctx context.Context, businessID string) (store.Business, error)
	CreateCampaign(ctx context.Context, campaign store.Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (store.Campaign, error)
	ListCampaigns(ctx context.Context, businessID string) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID string, mutate func(*store.Campaign) error) (store.Campaign, error)
	DueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]string, error)
	ClaimScheduledCampaign(ctx context.Context, campaignID string) (bool, error)
}

// DispatchTrigger starts the notification fan-out for a newly active campaign.
// Implemented inline by the notification dispatcher or asynchronously by the job client.
type DispatchTrigger interface {
	TriggerDispatch(ctx context.Context, campaign store.Campaign) error
}

// EventPublisher receives campaign.status_changed domain events
type EventPublisher interface {
	PublishCampaignStatusChanged(ctx context.Context, campaign store.Campaign, previousStatus string) error
}
