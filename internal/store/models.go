package store

import (
	"time"
)

// Campaign statuses
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Campaign audiences
const (
	AudienceAll       = "all"
	AudienceNew       = "new"
	AudienceReturning = "returning"
	AudienceInactive  = "inactive"
)

// Transaction log actions
const (
	ActionScan        = "SCAN"
	ActionStampIssued = "STAMP_ISSUED"
	ActionRedeem      = "REDEEM"
)

const (
	RedemptionStatusCompleted = "completed"
	NotificationTypeCampaign  = "campaign"
)

// NotificationPreferences are owned by the customer collaborator
type NotificationPreferences struct {
	Enabled   bool `json:"enabled"`
	Campaigns bool `json:"campaigns"`
}

// AllowsCampaigns reports whether campaign messages may be queued for the customer
func (p NotificationPreferences) AllowsCampaigns() bool {
	return p.Enabled && p.Campaigns
}

type Customer struct {
	ID               string                  `json:"id"`
	Email            string                  `json:"email"`
	CreatedAt        time.Time               `json:"created_at"`
	TotalStamps      int                     `json:"total_stamps"`
	TotalRedemptions int                     `json:"total_redemptions"`
	Notifications    NotificationPreferences `json:"notifications"`
}

type Business struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	TotalStampsIssued int       `json:"total_stamps_issued"`
	TotalRedemptions  int       `json:"total_redemptions"`
	ActiveRewards     int       `json:"active_rewards"`
	CreatedAt         time.Time `json:"created_at"`
}

// StampEvent is immutable once appended to a (customer, business) sequence
type StampEvent struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	BusinessID string    `json:"business_id"`
	RewardID   *string   `json:"reward_id,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
	Method     string    `json:"method"`
}

type Reward struct {
	ID                 string    `json:"id"`
	BusinessID         string    `json:"business_id"`
	Name               string    `json:"name"`
	Description        *string   `json:"description,omitempty"`
	StampsRequired     int       `json:"stamps_required"`
	IsActive           bool      `json:"is_active"`
	MaxRedemptions     *int      `json:"max_redemptions,omitempty"`
	CurrentRedemptions int       `json:"current_redemptions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Redemption is write-once
type Redemption struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	BusinessID string    `json:"business_id"`
	RewardID   string    `json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
	Status     string    `json:"status"`
}

type Campaign struct {
	ID                  string         `json:"id"`
	BusinessID          string         `json:"business_id"`
	Name                string         `json:"name"`
	Type                string         `json:"type"`
	StartDate           time.Time      `json:"start_date"`
	EndDate             time.Time      `json:"end_date"`
	Status              string         `json:"status"`
	TargetAudience      string         `json:"target_audience"`
	Conditions          map[string]any `json:"conditions,omitempty"`
	NotificationMessage *string        `json:"notification_message,omitempty"`
	DispatchedAt        *time.Time     `json:"dispatched_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// IsTerminal reports whether the campaign can no longer be mutated
func (c Campaign) IsTerminal() bool {
	return c.Status == CampaignStatusCompleted || c.Status == CampaignStatusCancelled
}

// TransactionData carries the identifiers of a log entry. Empty strings mean absent.
type TransactionData struct {
	BusinessID string `json:"businessId"`
	CustomerID string `json:"customerId,omitempty"`
	RewardID   string `json:"rewardId,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
}

// TransactionLogEntry is append-only and never mutated
type TransactionLogEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Action    string          `json:"action"`
	Data      TransactionData `json:"data"`
}

// NotificationMessage is handed to the external delivery collaborator
type NotificationMessage struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	CustomerID string         `json:"customer_id"`
	CampaignID string         `json:"campaign_id"`
	BusinessID string         `json:"business_id"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DailyStats are the UTC-day aggregate counters
type DailyStats struct {
	Date        string `json:"date"`
	Stamps      int    `json:"stamps"`
	Redemptions int    `json:"redemptions"`
}

// DayKey formats the UTC date used for daily counters
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AppendStampParams describes one issuance
type AppendStampParams struct {
	Event          StampEvent
	IdempotencyKey string
}

type AppendStampResult struct {
	Event    StampEvent
	Balance  int
	Replayed bool
}

// RedeemParams carries a fully built redemption record; the store only commits it when every check passes
type RedeemParams struct {
	Redemption Redemption
}

type RedeemResult struct {
	Redemption         Redemption
	NewBalance         int
	RewardRedemptions  int
	ConsumedStampCount int
}
