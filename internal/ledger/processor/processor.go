package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/retry"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrInvalidInput     = errors.New("invalid stamp request")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
)

const DefaultMethod = "manual"

type LedgerProcessor struct {
	store     LedgerStore
	publisher EventPublisher
	retry     retry.Policy
	logger    *observability.Logger
	now       func() time.Time
}

func New(store LedgerStore, publisher EventPublisher, policy retry.Policy, logger *observability.Logger) LedgerProcessor {
	return LedgerProcessor{
		store:     store,
		publisher: publisher,
		retry:     policy,
		logger:    logger,
		now:       time.Now,
	}
}

// IssueStampParams describes one stamp issuance
type IssueStampParams struct {
	CustomerID     string
	BusinessID     string
	RewardID       *string
	Method         string
	IdempotencyKey string
}

type IssueStampResult struct {
	Event    store.StampEvent `json:"event"`
	Balance  int              `json:"balance"`
	Replayed bool             `json:"replayed"`
}

// IssueStamp appends a stamp to the customer's sequence at the business and returns the new balance.
// A repeated idempotency key returns the original event without appending.
func (p *LedgerProcessor) IssueStamp(ctx context.Context, params IssueStampParams) (IssueStampResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: params.CustomerID},
		observability.Field{Key: "business_id", Value: params.BusinessID},
	)

	if strings.TrimSpace(params.CustomerID) == "" || strings.TrimSpace(params.BusinessID) == "" {
		return IssueStampResult{}, ErrInvalidInput
	}
	if params.Method == "" {
		params.Method = DefaultMethod
	}
	if params.RewardID != nil && *params.RewardID == "" {
		params.RewardID = nil
	}

	event := store.StampEvent{
		ID:         uuid.NewString(),
		CustomerID: params.CustomerID,
		BusinessID: params.BusinessID,
		RewardID:   params.RewardID,
		IssuedAt:   p.now().UTC(),
		Method:     params.Method,
	}

	res, err := p.store.AppendStamp(ctx, store.AppendStampParams{Event: event, IdempotencyKey: params.IdempotencyKey})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCustomerNotFound):
			return IssueStampResult{}, ErrCustomerNotFound
		case errors.Is(err, store.ErrBusinessNotFound):
			return IssueStampResult{}, ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to issue stamp", err)
		return IssueStampResult{}, fmt.Errorf("failed to issue stamp: %w", err)
	}

	result := IssueStampResult{Event: res.Event, Balance: res.Balance, Replayed: res.Replayed}
	if res.Replayed {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "stamp_id", Value: res.Event.ID}), "stamp issuance replayed")
		return result, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stamp_id", Value: res.Event.ID},
		observability.Field{Key: "balance", Value: res.Balance},
	)

	entry := store.TransactionLogEntry{
		Timestamp: res.Event.IssuedAt,
		Action:    store.ActionStampIssued,
		Data: store.TransactionData{
			BusinessID: res.Event.BusinessID,
			CustomerID: res.Event.CustomerID,
		},
	}
	if res.Event.RewardID != nil {
		entry.Data.RewardID = *res.Event.RewardID
	}
	if err := p.store.AppendTransaction(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to append stamp to transaction log", err)
	}

	if p.publisher != nil {
		if err := p.publisher.PublishStampIssued(ctx, res.Event, res.Balance); err != nil {
			p.logger.Error(ctx, "failed to publish stamp issued event", err)
		}
	}

	p.logger.Info(ctx, "stamp issued")
	return result, nil
}

// GetBalance returns the number of unconsumed stamps the customer holds at the business
func (p *LedgerProcessor) GetBalance(ctx context.Context, customerID, businessID string) (int, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID},
		observability.Field{Key: "business_id", Value: businessID},
	)

	if err := p.ensureParticipants(ctx, customerID, businessID); err != nil {
		return 0, err
	}

	balance, err := retry.Do(ctx, p.retry, func(ctx context.Context) (int, error) {
		return p.store.StampBalance(ctx, customerID, businessID)
	})
	if err != nil {
		p.logger.Error(ctx, "failed to get stamp balance", err)
		return 0, fmt.Errorf("failed to get stamp balance: %w", err)
	}
	return balance, nil
}

// ListStamps returns the unconsumed stamps, oldest first
func (p *LedgerProcessor) ListStamps(ctx context.Context, customerID, businessID string) ([]store.StampEvent, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "customer_id", Value: customerID},
		observability.Field{Key: "business_id", Value: businessID},
	)

	if err := p.ensureParticipants(ctx, customerID, businessID); err != nil {
		return nil, err
	}

	stamps, err := retry.Do(ctx, p.retry, func(ctx context.Context) ([]store.StampEvent, error) {
		return p.store.ListStamps(ctx, customerID, businessID)
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list stamps", err)
		return nil, fmt.Errorf("failed to list stamps: %w", err)
	}
	return stamps, nil
}

// GetDailyStats returns the UTC-day counters; an empty date means today
func (p *LedgerProcessor) GetDailyStats(ctx context.Context, date string) (store.DailyStats, error) {
	if date == "" {
		date = store.DayKey(p.now())
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return store.DailyStats{}, ErrInvalidDate
	}

	stats, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.DailyStats, error) {
		return p.store.GetDailyStats(ctx, date)
	})
	if err != nil {
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "date", Value: date}), "failed to get daily stats", err)
		return store.DailyStats{}, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return stats, nil
}

func (p *LedgerProcessor) ensureParticipants(ctx context.Context, customerID, businessID string) error {
	if _, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Customer, error) {
		return p.store.GetCustomer(ctx, customerID)
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to get customer", err)
		return fmt.Errorf("failed to get customer: %w", err)
	}

	if _, err := retry.Do(ctx, p.retry, func(ctx context.Context) (store.Business, error) {
		return p.store.GetBusiness(ctx, businessID)
	}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBusinessNotFound
		}
		p.logger.Error(ctx, "failed to get business", err)
		return fmt.Errorf("failed to get business: %w", err)
	}
	return nil
}
