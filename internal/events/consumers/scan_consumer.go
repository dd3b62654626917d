package consumers

import (
	"context"
	"fmt"
	"time"

	"loyalty-server/internal/analytics/processor"
	"loyalty-server/internal/clients/kafka"
	"loyalty-server/internal/events"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
)

// ScanRecorder is satisfied by the analytics processor
type ScanRecorder interface {
	RecordScan(ctx context.Context, params processor.RecordScanParams) (store.TransactionLogEntry, error)
}

// ScanConsumer appends scan.recorded events from point-of-sale devices to the transaction log
type ScanConsumer struct {
	kafkaConsumer *kafka.Consumer
	recorder      ScanRecorder
	logger        *observability.Logger
}

func NewScanConsumer(kafkaConsumer *kafka.Consumer, recorder ScanRecorder, logger *observability.Logger) *ScanConsumer {
	return &ScanConsumer{
		kafkaConsumer: kafkaConsumer,
		recorder:      recorder,
		logger:        logger,
	}
}

// Start consumes until ctx is cancelled. A failed append leaves the message uncommitted.
func (c *ScanConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "starting scan consumer")
	return c.kafkaConsumer.ConsumeEvents(ctx, c.HandleEvent)
}

// HandleEvent records one scan event; other event types are acknowledged and ignored
func (c *ScanConsumer) HandleEvent(ctx context.Context, event kafka.EventMessage) error {
	if event.Type != events.TypeScanRecorded {
		return nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: event.ID})

	params := processor.RecordScanParams{
		BusinessID: event.BusinessID,
		RewardID:   stringField(event.Data, "reward_id"),
		CampaignID: stringField(event.Data, "campaign_id"),
		CustomerID: stringField(event.Data, "customer_id"),
	}
	if params.CampaignID == "" && event.CampaignID != nil {
		params.CampaignID = *event.CampaignID
	}
	if ts, err := time.Parse(time.RFC3339, event.Timestamp); err == nil {
		params.ScannedAt = ts
	}

	if _, err := c.recorder.RecordScan(ctx, params); err != nil {
		if store.IsTransient(err) {
			return fmt.Errorf("failed to record scan: %w", err)
		}
		// malformed scans would block the partition forever
		c.logger.Error(ctx, "dropping invalid scan event", err)
		return nil
	}
	return nil
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
