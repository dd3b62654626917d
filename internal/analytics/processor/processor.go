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
)

var (
	ErrInvalidScan  = errors.New("scan needs a business and a reward or campaign id")
	ErrInvalidToken = errors.New("token id is required")
)

type AnalyticsProcessor struct {
	store          AnalyticsStore
	retry          retry.Policy
	substringMatch bool
	logger         *observability.Logger
	now            func() time.Time
}

// New builds the processor. substringMatch reproduces legacy token matching where a token also
// matches any reward or campaign id containing it.
func New(store AnalyticsStore, policy retry.Policy, substringMatch bool, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:          store,
		retry:          policy,
		substringMatch: substringMatch,
		logger:         logger,
		now:            time.Now,
	}
}

type RecordScanParams struct {
	BusinessID string
	RewardID   string
	CampaignID string
	CustomerID string
	// ScannedAt defaults to now
	ScannedAt time.Time
}

// RecordScan appends a SCAN entry to the transaction log
func (p *AnalyticsProcessor) RecordScan(ctx context.Context, params RecordScanParams) (store.TransactionLogEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: params.BusinessID},
		observability.Field{Key: "reward_id", Value: params.RewardID},
		observability.Field{Key: "campaign_id", Value: params.CampaignID},
	)

	if strings.TrimSpace(params.BusinessID) == "" || (params.RewardID == "" && params.CampaignID == "") {
		return store.TransactionLogEntry{}, ErrInvalidScan
	}

	scannedAt := params.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = p.now()
	}
	entry := store.TransactionLogEntry{
		Timestamp: scannedAt.UTC(),
		Action:    store.ActionScan,
		Data: store.TransactionData{
			BusinessID: params.BusinessID,
			CustomerID: params.CustomerID,
			RewardID:   params.RewardID,
			CampaignID: params.CampaignID,
		},
	}

	if err := p.store.AppendTransaction(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to record scan", err)
		return store.TransactionLogEntry{}, fmt.Errorf("failed to record scan: %w", err)
	}
	return entry, nil
}

// GetTokenScanStats aggregates every recorded scan of tokenID at businessID
func (p *AnalyticsProcessor) GetTokenScanStats(ctx context.Context, businessID, tokenID string) (ScanStats, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "business_id", Value: businessID},
		observability.Field{Key: "token_id", Value: tokenID},
	)

	if strings.TrimSpace(tokenID) == "" {
		return ScanStats{}, ErrInvalidToken
	}

	entries, err := retry.Do(ctx, p.retry, func(ctx context.Context) ([]store.TransactionLogEntry, error) {
		return p.store.ListTransactions(ctx, store.ActionScan, time.Time{})
	})
	if err != nil {
		p.logger.Error(ctx, "failed to load scan log", err)
		return ScanStats{}, fmt.Errorf("failed to load scan log: %w", err)
	}

	return AnalyzeScans(entries, tokenID, businessID, p.now(), p.substringMatch), nil
}
