package events

import (
	"context"
	"time"

	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

// Domain event types
const (
	TypeStampIssued           = "stamp.issued"
	TypeRewardRedeemed        = "reward.redeemed"
	TypeCampaignStatusChanged = "campaign.status_changed"
	TypeScanRecorded          = "scan.recorded"
)

// EventProducer is satisfied by kafka.Producer
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher handles publishing domain events to Kafka. A nil *Publisher drops events,
// which is how the service runs without Kafka.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Publisher) publish(ctx context.Context, eventType, businessID string, campaignID *string, data map[string]interface{}) error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.PublishEvent(ctx, kafka.EventMessage{
		ID:         uuid.New().String(),
		Type:       eventType,
		BusinessID: businessID,
		CampaignID: campaignID,
		Data:       data,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	})
}

// PublishStampIssued publishes a stamp.issued event
func (p *Publisher) PublishStampIssued(ctx context.Context, event store.StampEvent, balance int) error {
	data := map[string]interface{}{
		"stamp_id":    event.ID,
		"customer_id": event.CustomerID,
		"method":      event.Method,
		"issued_at":   event.IssuedAt.UTC().Format(time.RFC3339Nano),
		"balance":     balance,
	}
	if event.RewardID != nil {
		data["reward_id"] = *event.RewardID
	}
	return p.publish(ctx, TypeStampIssued, event.BusinessID, nil, data)
}

// PublishRewardRedeemed publishes a reward.redeemed event
func (p *Publisher) PublishRewardRedeemed(ctx context.Context, redemption store.Redemption, newBalance int) error {
	return p.publish(ctx, TypeRewardRedeemed, redemption.BusinessID, nil, map[string]interface{}{
		"redemption_id": redemption.ID,
		"customer_id":   redemption.CustomerID,
		"reward_id":     redemption.RewardID,
		"redeemed_at":   redemption.RedeemedAt.UTC().Format(time.RFC3339Nano),
		"new_balance":   newBalance,
	})
}

// PublishCampaignStatusChanged publishes a campaign.status_changed event
func (p *Publisher) PublishCampaignStatusChanged(ctx context.Context, campaign store.Campaign, previousStatus string) error {
	campaignID := campaign.ID
	return p.publish(ctx, TypeCampaignStatusChanged, campaign.BusinessID, &campaignID, map[string]interface{}{
		"campaign_id":     campaign.ID,
		"previous_status": previousStatus,
		"status":          campaign.Status,
	})
}
