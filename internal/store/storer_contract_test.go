package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStorerContract exercises behaviour both Storer implementations must share
func runStorerContract(t *testing.T, newStore func(t *testing.T) Storer) {
	t.Run("append stamp grows balance by one and bumps counters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")

		issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		for i := 1; i <= 3; i++ {
			res, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp(fmt.Sprintf("s%d", i), "c1", "b1", issuedAt)})
			require.NoError(t, err)
			assert.Equal(t, i, res.Balance)
			assert.False(t, res.Replayed)
		}

		balance, err := s.StampBalance(ctx, "c1", "b1")
		require.NoError(t, err)
		assert.Equal(t, 3, balance)

		customer, err := s.GetCustomer(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 3, customer.TotalStamps)

		business, err := s.GetBusiness(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 3, business.TotalStampsIssued)

		stats, err := s.GetDailyStats(ctx, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Stamps)

		last, ok, err := s.LastStampAt(ctx, "c1", "b1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, last.Equal(issuedAt))

		ids, err := s.ListBusinessCustomerIDs(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, ids)
	})

	t.Run("append stamp rejects unknown customer and business", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")

		_, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s1", "nope", "b1", time.Now())})
		assert.ErrorIs(t, err, ErrCustomerNotFound)

		_, err = s.AppendStamp(ctx, AppendStampParams{Event: stamp("s1", "c1", "nope", time.Now())})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("idempotency key replays the original event", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")

		first, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s1", "c1", "b1", time.Now()), IdempotencyKey: "k1"})
		require.NoError(t, err)

		second, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s2", "c1", "b1", time.Now()), IdempotencyKey: "k1"})
		require.NoError(t, err)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Event.ID, second.Event.ID)
		assert.Equal(t, 1, second.Balance)
	})

	t.Run("idempotency key is scoped to the customer and business", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "alice", "cafe")
		seed(t, s, "bob", "bakery")
		seed(t, s, "bob", "cafe")

		first, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s1", "alice", "cafe", time.Now()), IdempotencyKey: "order-1"})
		require.NoError(t, err)
		assert.False(t, first.Replayed)

		other, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s2", "bob", "bakery", time.Now()), IdempotencyKey: "order-1"})
		require.NoError(t, err)
		assert.False(t, other.Replayed)
		assert.Equal(t, "s2", other.Event.ID)
		assert.Equal(t, "bob", other.Event.CustomerID)
		assert.Equal(t, 1, other.Balance)

		sameBusiness, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s3", "bob", "cafe", time.Now()), IdempotencyKey: "order-1"})
		require.NoError(t, err)
		assert.False(t, sameBusiness.Replayed)
		assert.Equal(t, "s3", sameBusiness.Event.ID)

		balance, err := s.StampBalance(ctx, "bob", "bakery")
		require.NoError(t, err)
		assert.Equal(t, 1, balance)

		balance, err = s.StampBalance(ctx, "alice", "cafe")
		require.NoError(t, err)
		assert.Equal(t, 1, balance)
	})

	t.Run("redeem consumes oldest stamps first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			_, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp(fmt.Sprintf("s%d", i), "c1", "b1", base.Add(time.Duration(i)*time.Hour))})
			require.NoError(t, err)
		}
		putReward(t, s, "r1", "b1", 3, nil)

		res, err := s.Redeem(ctx, RedeemParams{Redemption: redemption("d1", "c1", "b1", "r1", base)})
		require.NoError(t, err)
		assert.Equal(t, 2, res.NewBalance)
		assert.Equal(t, 1, res.RewardRedemptions)
		assert.Equal(t, 3, res.ConsumedStampCount)

		left, err := s.ListStamps(ctx, "c1", "b1")
		require.NoError(t, err)
		require.Len(t, left, 2)
		assert.Equal(t, "s3", left[0].ID)
		assert.Equal(t, "s4", left[1].ID)

		history, err := s.ListRedemptions(ctx, "c1", "b1")
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "d1", history[0].ID)

		customer, err := s.GetCustomer(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 1, customer.TotalRedemptions)

		stats, err := s.GetDailyStats(ctx, DayKey(base))
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Redemptions)
	})

	t.Run("redeem failure order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")
		seed(t, s, "c2", "b2")
		_, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp("s1", "c1", "b1", time.Now())})
		require.NoError(t, err)

		one := 1
		putReward(t, s, "small", "b1", 1, &one)
		putReward(t, s, "big", "b1", 5, nil)
		putReward(t, s, "other", "b2", 1, nil)
		putReward(t, s, "off", "b1", 1, nil)
		_, err = s.DeactivateReward(ctx, "off")
		require.NoError(t, err)

		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d0", "c1", "b1", "missing", time.Now())})
		assert.ErrorIs(t, err, ErrRewardNotFound)

		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d0", "c1", "b1", "other", time.Now())})
		assert.ErrorIs(t, err, ErrRewardNotFound)

		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d0", "c1", "b1", "off", time.Now())})
		assert.ErrorIs(t, err, ErrRewardInactive)

		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d0", "c1", "b1", "big", time.Now())})
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d1", "c1", "b1", "small", time.Now())})
		require.NoError(t, err)

		_, err = s.AppendStamp(ctx, AppendStampParams{Event: stamp("s2", "c1", "b1", time.Now())})
		require.NoError(t, err)
		_, err = s.Redeem(ctx, RedeemParams{Redemption: redemption("d2", "c1", "b1", "small", time.Now())})
		assert.ErrorIs(t, err, ErrRedemptionCapReached)
	})

	t.Run("concurrent redeem against exact balance succeeds once", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")
		for i := 0; i < 3; i++ {
			_, err := s.AppendStamp(ctx, AppendStampParams{Event: stamp(fmt.Sprintf("s%d", i), "c1", "b1", time.Now())})
			require.NoError(t, err)
		}
		putReward(t, s, "r1", "b1", 3, nil)

		const n = 20
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = s.Redeem(ctx, RedeemParams{Redemption: redemption(fmt.Sprintf("d%d", i), "c1", "b1", "r1", time.Now())})
			}(i)
		}
		wg.Wait()

		successes := 0
		for _, err := range errs {
			if err == nil {
				successes++
				continue
			}
			assert.ErrorIs(t, err, ErrInsufficientBalance)
		}
		assert.Equal(t, 1, successes)

		balance, err := s.StampBalance(ctx, "c1", "b1")
		require.NoError(t, err)
		assert.Equal(t, 0, balance)
	})

	t.Run("reward upsert replaces fields and tracks active count", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")

		created, isNew, err := s.UpsertReward(ctx, Reward{ID: "r1", BusinessID: "b1", Name: "Coffee", StampsRequired: 5, IsActive: true})
		require.NoError(t, err)
		assert.True(t, isNew)
		assert.Equal(t, 0, created.CurrentRedemptions)

		desc := "free"
		updated, isNew, err := s.UpsertReward(ctx, Reward{ID: "r1", BusinessID: "b1", Name: "Latte", Description: &desc, StampsRequired: 8, IsActive: true})
		require.NoError(t, err)
		assert.False(t, isNew)
		assert.Equal(t, "Latte", updated.Name)

		rewards, err := s.ListRewards(ctx, "b1")
		require.NoError(t, err)
		require.Len(t, rewards, 1)
		assert.Equal(t, 8, rewards[0].StampsRequired)
		require.NotNil(t, rewards[0].Description)
		assert.Equal(t, "free", *rewards[0].Description)

		business, err := s.GetBusiness(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 1, business.ActiveRewards)

		deactivated, err := s.DeactivateReward(ctx, "r1")
		require.NoError(t, err)
		assert.False(t, deactivated.IsActive)

		_, err = s.DeactivateReward(ctx, "r1")
		require.NoError(t, err)

		business, err = s.GetBusiness(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, 0, business.ActiveRewards)

		_, _, err = s.UpsertReward(ctx, Reward{ID: "r2", BusinessID: "missing", Name: "x", StampsRequired: 1, IsActive: true})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("campaign scheduled index follows status", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seed(t, s, "c1", "b1")

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateCampaign(ctx, Campaign{ID: "k1", BusinessID: "b1", Name: "Spring", Status: CampaignStatusScheduled, StartDate: now.Add(-time.Minute), EndDate: now.Add(time.Hour)}))
		require.NoError(t, s.CreateCampaign(ctx, Campaign{ID: "k2", BusinessID: "b1", Name: "Later", Status: CampaignStatusScheduled, StartDate: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour)}))
		assert.ErrorIs(t, s.CreateCampaign(ctx, Campaign{ID: "k1", BusinessID: "b1"}), ErrAlreadyExists)

		due, err := s.DueScheduledCampaigns(ctx, now, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"k1"}, due)

		claimed, err := s.ClaimScheduledCampaign(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, claimed)
		claimed, err = s.ClaimScheduledCampaign(ctx, "k1")
		require.NoError(t, err)
		assert.False(t, claimed)

		_, err = s.UpdateCampaign(ctx, "k2", func(c *Campaign) error {
			c.Status = CampaignStatusPaused
			return nil
		})
		require.NoError(t, err)
		due, err = s.DueScheduledCampaigns(ctx, now.Add(3*time.Hour), 10)
		require.NoError(t, err)
		assert.Empty(t, due)

		campaigns, err := s.ListCampaigns(ctx, "b1")
		require.NoError(t, err)
		assert.Len(t, campaigns, 2)

		_, err = s.UpdateCampaign(ctx, "missing", func(c *Campaign) error { return nil })
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("notification queue drains in order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for i := 0; i < 3; i++ {
			require.NoError(t, s.EnqueueNotification(ctx, NotificationMessage{ID: fmt.Sprintf("n%d", i), Type: NotificationTypeCampaign}))
		}

		first, err := s.DrainNotifications(ctx, 2)
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, "n0", first[0].ID)

		rest, err := s.DrainNotifications(ctx, 0)
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "n2", rest[0].ID)

		empty, err := s.DrainNotifications(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("transaction log filters by action and time", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.AppendTransaction(ctx, TransactionLogEntry{Timestamp: base, Action: ActionScan, Data: TransactionData{BusinessID: "b1", RewardID: "r1"}}))
		require.NoError(t, s.AppendTransaction(ctx, TransactionLogEntry{Timestamp: base.Add(time.Hour), Action: ActionStampIssued, Data: TransactionData{BusinessID: "b1"}}))
		require.NoError(t, s.AppendTransaction(ctx, TransactionLogEntry{Timestamp: base.Add(2 * time.Hour), Action: ActionScan, Data: TransactionData{BusinessID: "b1", CampaignID: "k1"}}))

		scans, err := s.ListTransactions(ctx, ActionScan, time.Time{})
		require.NoError(t, err)
		require.Len(t, scans, 2)
		assert.Equal(t, "r1", scans[0].Data.RewardID)

		recent, err := s.ListTransactions(ctx, "", base.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Len(t, recent, 2)
	})
}

func seed(t *testing.T, s Storer, customerID, businessID string) {
	t.Helper()
	ctx := context.Background()
	_, err := s.UpsertCustomer(ctx, Customer{ID: customerID, Email: customerID + "@example.com", Notifications: NotificationPreferences{Enabled: true, Campaigns: true}})
	require.NoError(t, err)
	_, err = s.UpsertBusiness(ctx, Business{ID: businessID, Name: "Business " + businessID, Category: "cafe"})
	require.NoError(t, err)
}

func stamp(id, customerID, businessID string, at time.Time) StampEvent {
	return StampEvent{ID: id, CustomerID: customerID, BusinessID: businessID, IssuedAt: at.UTC(), Method: "qr"}
}

func redemption(id, customerID, businessID, rewardID string, at time.Time) Redemption {
	return Redemption{ID: id, CustomerID: customerID, BusinessID: businessID, RewardID: rewardID, RedeemedAt: at.UTC(), Status: RedemptionStatusCompleted}
}

func putReward(t *testing.T, s Storer, id, businessID string, required int, maxRedemptions *int) {
	t.Helper()
	now := time.Now().UTC()
	_, _, err := s.UpsertReward(context.Background(), Reward{
		ID:             id,
		BusinessID:     businessID,
		Name:           "Reward " + id,
		StampsRequired: required,
		IsActive:       true,
		MaxRedemptions: maxRedemptions,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	require.NoError(t, err)
}
