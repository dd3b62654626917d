// Package notifications fans campaign messages out to a business's eligible customers.
package notifications

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=notifications

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"loyalty-server/internal/campaign/audience"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/retry"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 8

type Dispatcher struct {
	store       DispatchStore
	queue       Queue
	concurrency int
	retry       retry.Policy
	logger      *observability.Logger
	now         func() time.Time
}

func NewDispatcher(store DispatchStore, queue Queue, concurrency int, policy retry.Policy, logger *observability.Logger) *Dispatcher {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Dispatcher{
		store:       store,
		queue:       queue,
		concurrency: concurrency,
		retry:       policy,
		logger:      logger,
		now:         time.Now,
	}
}

type DispatchResult struct {
	Customers int `json:"customers"`
	Queued    int `json:"queued"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// TriggerDispatch runs the fan-out inline for the campaign's business
func (d *Dispatcher) TriggerDispatch(ctx context.Context, campaign store.Campaign) error {
	_, err := d.DispatchCampaign(ctx, campaign.BusinessID, campaign)
	return err
}

// DispatchCampaign queues one message per customer of businessID who allows campaign
// notifications and matches the campaign audience. Failures for one customer are logged
// and skipped; only a failure to list the business's customers is returned.
func (d *Dispatcher) DispatchCampaign(ctx context.Context, businessID string, campaign store.Campaign) (DispatchResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "target_audience", Value: campaign.TargetAudience},
	)

	if campaign.NotificationMessage == nil || *campaign.NotificationMessage == "" {
		return DispatchResult{}, nil
	}

	customerIDs, err := retry.Do(ctx, d.retry, func(ctx context.Context) ([]string, error) {
		return d.store.ListBusinessCustomerIDs(ctx, businessID)
	})
	if err != nil {
		d.logger.Error(ctx, "failed to list business customers", err)
		return DispatchResult{}, fmt.Errorf("failed to list business customers: %w", err)
	}

	now := d.now().UTC()
	var queued, skipped, failed atomic.Int64

	// each customer appears once in the index, so at most one message per customer
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for _, customerID := range customerIDs {
		g.Go(func() error {
			switch d.dispatchOne(gctx, businessID, customerID, campaign, now) {
			case outcomeQueued:
				queued.Add(1)
			case outcomeSkipped:
				skipped.Add(1)
			default:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := DispatchResult{
		Customers: len(customerIDs),
		Queued:    int(queued.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}
	d.logger.Metrics(ctx,
		observability.MetricField{Key: "customers", Value: result.Customers},
		observability.MetricField{Key: "queued", Value: result.Queued},
		observability.MetricField{Key: "skipped", Value: result.Skipped},
		observability.MetricField{Key: "failed", Value: result.Failed},
	)
	d.logger.Info(ctx, "campaign dispatched")
	return result, nil
}

type outcome int

const (
	outcomeQueued outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (d *Dispatcher) dispatchOne(ctx context.Context, businessID, customerID string, campaign store.Campaign, now time.Time) outcome {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID})

	customer, err := retry.Do(ctx, d.retry, func(ctx context.Context) (store.Customer, error) {
		return d.store.GetCustomer(ctx, customerID)
	})
	if err != nil {
		d.logger.Error(ctx, "failed to load customer for dispatch", err)
		return outcomeFailed
	}
	if !customer.Notifications.AllowsCampaigns() {
		return outcomeSkipped
	}

	subject := audience.Subject{Customer: customer}
	if audience.NeedsStampHistory(campaign.TargetAudience) {
		last, err := retry.Do(ctx, d.retry, func(ctx context.Context) (lastStamp, error) {
			at, ok, err := d.store.LastStampAt(ctx, customerID, businessID)
			return lastStamp{at: at, ok: ok}, err
		})
		if err != nil {
			d.logger.Error(ctx, "failed to load last stamp for dispatch", err)
			return outcomeFailed
		}
		subject.LastStampAt, subject.HasStamped = last.at, last.ok
	}
	if !audience.Eligible(campaign.TargetAudience, subject, now) {
		return outcomeSkipped
	}

	if err := d.queue.Enqueue(ctx, newCampaignMessage(customerID, businessID, campaign, now)); err != nil {
		d.logger.Error(ctx, "failed to enqueue campaign notification", err)
		return outcomeFailed
	}
	return outcomeQueued
}

type lastStamp struct {
	at time.Time
	ok bool
}

func newCampaignMessage(customerID, businessID string, campaign store.Campaign, now time.Time) store.NotificationMessage {
	return store.NotificationMessage{
		ID:         uuid.NewString(),
		Type:       store.NotificationTypeCampaign,
		CustomerID: customerID,
		CampaignID: campaign.ID,
		BusinessID: businessID,
		Title:      campaign.Name,
		Message:    *campaign.NotificationMessage,
		Data: map[string]any{
			"campaign_type": campaign.Type,
			"start_date":    campaign.StartDate,
			"end_date":      campaign.EndDate,
		},
		CreatedAt: now,
	}
}
