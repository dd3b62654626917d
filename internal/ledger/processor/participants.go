package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/retry"
	"loyalty-server/internal/store"
)

// UpsertCustomerParams carries the fields the customer collaborator owns. Counters are never overwritten.
// A nil CreatedAt keeps the stored join time, or uses now for a new customer.
type UpsertCustomerParams struct {
	ID                    string
	Email                 string
	NotificationsEnabled  bool
	CampaignNotifications bool
	CreatedAt             *time.Time
}

func (p *LedgerProcessor) UpsertCustomer(ctx context.Context, params UpsertCustomerParams) (store.Customer, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: params.ID})

	if strings.TrimSpace(params.ID) == "" {
		return store.Customer{}, ErrInvalidInput
	}

	record := store.Customer{
		ID:    params.ID,
		Email: params.Email,
		Notifications: store.NotificationPreferences{
			Enabled:   params.NotificationsEnabled,
			Campaigns: params.CampaignNotifications,
		},
	}
	if params.CreatedAt != nil {
		record.CreatedAt = params.CreatedAt.UTC()
	}

	customer, err := p.store.UpsertCustomer(ctx, record)
	if err != nil {
		p.logger.Error(ctx, "failed to upsert customer", err)
		return store.Customer{}, fmt.Errorf("failed to upsert customer: %w", err)
	}
	return customer, nil
}

func (p *LedgerProcessor) GetCustomer(ctx context.Context, customerID string) (store.Customer, error) {
	customer, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Customer, error) {
		return p.store.GetCustomer(ctx, customerID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Customer{}, ErrCustomerNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "customer_id", Value: customerID}), "failed to get customer", err)
		return store.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

type UpsertBusinessParams struct {
	ID       string
	Name     string
	Category string
}

func (p *LedgerProcessor) UpsertBusiness(ctx context.Context, params UpsertBusinessParams) (store.Business, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_id", Value: params.ID})

	if strings.TrimSpace(params.ID) == "" || strings.TrimSpace(params.Name) == "" {
		return store.Business{}, ErrInvalidInput
	}

	business, err := p.store.UpsertBusiness(ctx, store.Business{ID: params.ID, Name: params.Name, Category: params.Category})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert business", err)
		return store.Business{}, fmt.Errorf("failed to upsert business: %w", err)
	}
	return business, nil
}

func (p *LedgerProcessor) GetBusiness(ctx context.Context, businessID string) (store.Business, error) {
	business, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Business, error) {
		return p.store.GetBusiness(ctx, businessID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Business{}, ErrBusinessNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "business_id", Value: businessID}), "failed to get business", err)
		return store.Business{}, fmt.Errorf("failed to get business: %w", err)
	}
	return business, nil
}

// EnrollCustomer adds the customer to the business's customer index so campaigns can reach them
// before their first stamp
func (p *LedgerProcessor) EnrollCustomer(ctx context.Context, businessID, customerID string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID},
		observability.Field{Key: "business_id", Value: businessID},
	)

	err := p.store.EnrollCustomer(ctx, businessID, customerID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCustomerNotFound):
		return ErrCustomerNotFound
	case errors.Is(err, store.ErrBusinessNotFound):
		return ErrBusinessNotFound
	default:
		p.logger.Error(ctx, "failed to enroll customer", err)
		return fmt.Errorf("failed to enroll customer: %w", err)
	}
}
