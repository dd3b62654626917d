package store

import (
	"context"
	"time"
)

// Storer is the shared key-value store contract every ledger component is built on.
// RedisStore is the production implementation; MemoryStore serves tests and single-process runs.
type Storer interface {
	TransactionLog

	// Customer and business collaborator records
	UpsertCustomer(ctx context.Context, customer Customer) (Customer, error)
	GetCustomer(ctx context.Context, customerID string) (Customer, error)
	UpsertBusiness(ctx context.Context, business Business) (Business, error)
	GetBusiness(ctx context.Context, businessID string) (Business, error)
	EnrollCustomer(ctx context.Context, businessID, customerID string) error
	ListBusinessCustomerIDs(ctx context.Context, businessID string) ([]string, error)

	// Stamp ledger
	AppendStamp(ctx context.Context, params AppendStampParams) (AppendStampResult, error)
	StampBalance(ctx context.Context, customerID, businessID string) (int, error)
	ListStamps(ctx context.Context, customerID, businessID string) ([]StampEvent, error)
	LastStampAt(ctx context.Context, customerID, businessID string) (time.Time, bool, error)
	GetDailyStats(ctx context.Context, day string) (DailyStats, error)

	// Reward catalog
	UpsertReward(ctx context.Context, reward Reward) (Reward, bool, error)
	GetReward(ctx context.Context, rewardID string) (Reward, error)
	ListRewards(ctx context.Context, businessID string) ([]Reward, error)
	DeactivateReward(ctx context.Context, rewardID string) (Reward, error)

	// Redemptions
	Redeem(ctx context.Context, params RedeemParams) (RedeemResult, error)
	ListRedemptions(ctx context.Context, customerID, businessID string) ([]Redemption, error)

	// Campaigns
	CreateCampaign(ctx context.Context, campaign Campaign) error
	GetCampaign(ctx context.Context, campaignID string) (Campaign, error)
	ListCampaigns(ctx context.Context, businessID string) ([]Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID string, mutate func(*Campaign) error) (Campaign, error)
	DueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]string, error)
	ClaimScheduledCampaign(ctx context.Context, campaignID string) (bool, error)

	// Outbound notification queue
	EnqueueNotification(ctx context.Context, msg NotificationMessage) error
	DrainNotifications(ctx context.Context, max int) ([]NotificationMessage, error)
}

// TransactionLog is the global append-only log; Postgres can serve it independently of the KV store
type TransactionLog interface {
	AppendTransaction(ctx context.Context, entry TransactionLogEntry) error
	ListTransactions(ctx context.Context, action string, since time.Time) ([]TransactionLogEntry, error)
}
