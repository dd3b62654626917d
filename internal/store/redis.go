package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxOptimisticAttempts = 8

// issueStampScript appends one stamp event and bumps every counter tied to it.
// Returns {status, eventJSON, balance}; status 1 appended, 0 idempotent replay, -1/-2 missing customer/business.
var issueStampScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then return {-1} end
if redis.call('EXISTS', KEYS[2]) == 0 then return {-2} end
if ARGV[4] ~= '' then
  local prior = redis.call('GET', KEYS[7])
  if prior then
    return {0, prior, redis.call('LLEN', KEYS[3])}
  end
end
local balance = redis.call('RPUSH', KEYS[3], ARGV[1])
redis.call('SET', KEYS[4], ARGV[3])
redis.call('SADD', KEYS[5], ARGV[2])
redis.call('HINCRBY', KEYS[1], 'total_stamps', 1)
redis.call('HINCRBY', KEYS[2], 'total_stamps_issued', 1)
redis.call('HINCRBY', KEYS[6], 'stamps', 1)
if ARGV[4] ~= '' then
  redis.call('SET', KEYS[7], ARGV[1], 'EX', ARGV[5])
end
return {1, ARGV[1], balance}
`)

// redeemScript checks eligibility and consumes the oldest stamps in one step.
// Returns {1, newBalance, rewardRedemptions, consumed} or a negative status code.
var redeemScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then return {-1} end
if redis.call('EXISTS', KEYS[2]) == 0 then return {-2} end
local reward = redis.call('HMGET', KEYS[3], 'business_id', 'is_active', 'stamps_required', 'max_redemptions', 'current_redemptions')
if not reward[1] or reward[1] ~= ARGV[1] then return {-3} end
if reward[2] ~= '1' then return {-4} end
local required = tonumber(reward[3])
local balance = redis.call('LLEN', KEYS[4])
if balance < required then return {-5} end
local current = tonumber(reward[5]) or 0
if reward[4] and current >= tonumber(reward[4]) then return {-6} end
redis.call('LTRIM', KEYS[4], required, -1)
redis.call('LPUSH', KEYS[5], ARGV[2])
local count = redis.call('HINCRBY', KEYS[3], 'current_redemptions', 1)
redis.call('HINCRBY', KEYS[2], 'total_redemptions', 1)
redis.call('HINCRBY', KEYS[1], 'total_redemptions', 1)
redis.call('HINCRBY', KEYS[6], 'redemptions', 1)
return {1, balance - required, count, required}
`)

// RedisStore implements Storer on a shared Redis instance
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

var _ Storer = (*RedisStore)(nil)

// NewRedisStore wraps client; every call is bounded by timeout when it is positive
func NewRedisStore(client *redis.Client, timeout time.Duration) *RedisStore {
	return &RedisStore{client: client, timeout: timeout}
}

func (s *RedisStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *RedisStore) UpsertCustomer(ctx context.Context, customer Customer) (Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := customerKey(customer.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fields := customerToHash(customer)
		if customer.CreatedAt.IsZero() {
			delete(fields, "created_at")
			pipe.HSetNX(ctx, key, "created_at", formatTime(time.Now()))
		}
		pipe.HSet(ctx, key, fields)
		return nil
	})
	if err != nil {
		return Customer{}, transient("upsert customer", err)
	}
	return s.GetCustomer(ctx, customer.ID)
}

func (s *RedisStore) GetCustomer(ctx context.Context, customerID string) (Customer, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	h, err := s.client.HGetAll(ctx, customerKey(customerID)).Result()
	if err != nil {
		return Customer{}, transient("get customer", err)
	}
	if len(h) == 0 {
		return Customer{}, ErrCustomerNotFound
	}
	return customerFromHash(h), nil
}

func (s *RedisStore) UpsertBusiness(ctx context.Context, business Business) (Business, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := businessKey(business.ID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fields := businessToHash(business)
		if business.CreatedAt.IsZero() {
			delete(fields, "created_at")
			pipe.HSetNX(ctx, key, "created_at", formatTime(time.Now()))
		}
		pipe.HSet(ctx, key, fields)
		return nil
	})
	if err != nil {
		return Business{}, transient("upsert business", err)
	}
	return s.GetBusiness(ctx, business.ID)
}

func (s *RedisStore) GetBusiness(ctx context.Context, businessID string) (Business, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	h, err := s.client.HGetAll(ctx, businessKey(businessID)).Result()
	if err != nil {
		return Business{}, transient("get business", err)
	}
	if len(h) == 0 {
		return Business{}, ErrBusinessNotFound
	}
	return businessFromHash(h), nil
}

func (s *RedisStore) EnrollCustomer(ctx context.Context, businessID, customerID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.client.Exists(ctx, businessKey(businessID)).Result()
	if err != nil {
		return transient("enroll customer", err)
	}
	if n == 0 {
		return ErrBusinessNotFound
	}
	if n, err = s.client.Exists(ctx, customerKey(customerID)).Result(); err != nil {
		return transient("enroll customer", err)
	}
	if n == 0 {
		return ErrCustomerNotFound
	}
	if err := s.client.SAdd(ctx, businessCustomersKey(businessID), customerID).Err(); err != nil {
		return transient("enroll customer", err)
	}
	return nil
}

func (s *RedisStore) ListBusinessCustomerIDs(ctx context.Context, businessID string) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.SMembers(ctx, businessCustomersKey(businessID)).Result()
	if err != nil {
		return nil, transient("list business customers", err)
	}
	return ids, nil
}

func (s *RedisStore) AppendStamp(ctx context.Context, params AppendStampParams) (AppendStampResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	event := params.Event
	payload, err := json.Marshal(event)
	if err != nil {
		return AppendStampResult{}, fmt.Errorf("failed to encode stamp event: %w", err)
	}

	keys := []string{
		customerKey(event.CustomerID),
		businessKey(event.BusinessID),
		stampsKey(event.CustomerID, event.BusinessID),
		lastStampKey(event.CustomerID, event.BusinessID),
		businessCustomersKey(event.BusinessID),
		dailyStatsKey(DayKey(event.IssuedAt)),
		stampIdempotencyKey(event.CustomerID, event.BusinessID, params.IdempotencyKey),
	}
	args := []interface{}{
		string(payload),
		event.CustomerID,
		event.IssuedAt.UnixMilli(),
		params.IdempotencyKey,
		int(stampIdempotencyTTL.Seconds()),
	}

	res, err := issueStampScript.Run(ctx, s.client, keys, args...).Slice()
	if err != nil {
		return AppendStampResult{}, transient("append stamp", err)
	}

	switch status := res[0].(int64); status {
	case -1:
		return AppendStampResult{}, ErrCustomerNotFound
	case -2:
		return AppendStampResult{}, ErrBusinessNotFound
	default:
		var stored StampEvent
		if err := json.Unmarshal([]byte(res[1].(string)), &stored); err != nil {
			return AppendStampResult{}, fmt.Errorf("failed to decode stamp event: %w", err)
		}
		return AppendStampResult{
			Event:    stored,
			Balance:  int(res[2].(int64)),
			Replayed: status == 0,
		}, nil
	}
}

func (s *RedisStore) StampBalance(ctx context.Context, customerID, businessID string) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.client.LLen(ctx, stampsKey(customerID, businessID)).Result()
	if err != nil {
		return 0, transient("stamp balance", err)
	}
	return int(n), nil
}

func (s *RedisStore) ListStamps(ctx context.Context, customerID, businessID string) ([]StampEvent, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.LRange(ctx, stampsKey(customerID, businessID), 0, -1).Result()
	if err != nil {
		return nil, transient("list stamps", err)
	}
	return decodeAll[StampEvent](raw)
}

func (s *RedisStore) LastStampAt(ctx context.Context, customerID, businessID string) (time.Time, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ms, err := s.client.Get(ctx, lastStampKey(customerID, businessID)).Int64()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, transient("last stamp", err)
	}
	return time.UnixMilli(ms).UTC(), true, nil
}

func (s *RedisStore) GetDailyStats(ctx context.Context, day string) (DailyStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	h, err := s.client.HGetAll(ctx, dailyStatsKey(day)).Result()
	if err != nil {
		return DailyStats{}, transient("daily stats", err)
	}
	return DailyStats{Date: day, Stamps: atoi(h["stamps"]), Redemptions: atoi(h["redemptions"])}, nil
}

// optimistic runs fn under WATCH until it commits or the attempt budget is spent.
// fn returns domain errors as-is and tags client failures through transient.
func (s *RedisStore) optimistic(ctx context.Context, op string, fn func(tx *redis.Tx) error, keys ...string) error {
	for attempt := 0; attempt < maxOptimisticAttempts; attempt++ {
		var fnErr error
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			fnErr = fn(tx)
			return fnErr
		}, keys...)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, redis.TxFailedErr):
			continue
		case fnErr != nil && errors.Is(err, fnErr):
			return err
		default:
			return transient(op, err)
		}
	}
	return transient(op, errOptimisticConflict)
}

func (s *RedisStore) UpsertReward(ctx context.Context, reward Reward) (Reward, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := rewardKey(reward.ID)
	bKey := businessKey(reward.BusinessID)
	var created bool
	var saved Reward

	err := s.optimistic(ctx, "upsert reward", func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, bKey).Result()
		if err != nil {
			return transient("upsert reward", err)
		}
		if exists == 0 {
			return ErrBusinessNotFound
		}

		h, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return transient("upsert reward", err)
		}

		next := reward
		delta := 0
		created = len(h) == 0
		if created {
			next.CurrentRedemptions = 0
			if next.IsActive {
				delta = 1
			}
		} else {
			existing := rewardFromHash(h)
			if existing.BusinessID != reward.BusinessID {
				return ErrAlreadyExists
			}
			next.CurrentRedemptions = existing.CurrentRedemptions
			next.CreatedAt = existing.CreatedAt
			if existing.IsActive != next.IsActive {
				delta = activeDelta(next.IsActive)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key, rewardToHash(next))
			pipe.SAdd(ctx, businessRewardsKey(reward.BusinessID), reward.ID)
			if delta != 0 {
				pipe.HIncrBy(ctx, bKey, "active_rewards", int64(delta))
			}
			return nil
		})
		if err != nil {
			return transient("upsert reward", err)
		}
		saved = next
		return nil
	}, key, bKey)
	if err != nil {
		return Reward{}, false, err
	}
	return saved, created, nil
}

func (s *RedisStore) GetReward(ctx context.Context, rewardID string) (Reward, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	h, err := s.client.HGetAll(ctx, rewardKey(rewardID)).Result()
	if err != nil {
		return Reward{}, transient("get reward", err)
	}
	if len(h) == 0 {
		return Reward{}, ErrRewardNotFound
	}
	return rewardFromHash(h), nil
}

func (s *RedisStore) ListRewards(ctx context.Context, businessID string) ([]Reward, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.SMembers(ctx, businessRewardsKey(businessID)).Result()
	if err != nil {
		return nil, transient("list rewards", err)
	}
	if len(ids) == 0 {
		return []Reward{}, nil
	}

	cmds, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.HGetAll(ctx, rewardKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, transient("list rewards", err)
	}

	rewards := make([]Reward, 0, len(cmds))
	for _, cmd := range cmds {
		h := cmd.(*redis.MapStringStringCmd).Val()
		if len(h) == 0 {
			continue
		}
		rewards = append(rewards, rewardFromHash(h))
	}
	sortRewards(rewards)
	return rewards, nil
}

func (s *RedisStore) DeactivateReward(ctx context.Context, rewardID string) (Reward, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := rewardKey(rewardID)
	var saved Reward
	err := s.optimistic(ctx, "deactivate reward", func(tx *redis.Tx) error {
		h, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return transient("deactivate reward", err)
		}
		if len(h) == 0 {
			return ErrRewardNotFound
		}
		reward := rewardFromHash(h)
		if !reward.IsActive {
			saved = reward
			return nil
		}

		reward.IsActive = false
		reward.UpdatedAt = time.Now().UTC()
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, "is_active", formatBool(false), "updated_at", formatTime(reward.UpdatedAt))
			pipe.HIncrBy(ctx, businessKey(reward.BusinessID), "active_rewards", -1)
			return nil
		})
		if err != nil {
			return transient("deactivate reward", err)
		}
		saved = reward
		return nil
	}, key)
	if err != nil {
		return Reward{}, err
	}
	return saved, nil
}

func (s *RedisStore) Redeem(ctx context.Context, params RedeemParams) (RedeemResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r := params.Redemption
	payload, err := json.Marshal(r)
	if err != nil {
		return RedeemResult{}, fmt.Errorf("failed to encode redemption: %w", err)
	}

	keys := []string{
		customerKey(r.CustomerID),
		businessKey(r.BusinessID),
		rewardKey(r.RewardID),
		stampsKey(r.CustomerID, r.BusinessID),
		redemptionsKey(r.CustomerID, r.BusinessID),
		dailyStatsKey(DayKey(r.RedeemedAt)),
	}
	res, err := redeemScript.Run(ctx, s.client, keys, r.BusinessID, string(payload)).Slice()
	if err != nil {
		return RedeemResult{}, transient("redeem", err)
	}

	switch res[0].(int64) {
	case -1:
		return RedeemResult{}, ErrCustomerNotFound
	case -2:
		return RedeemResult{}, ErrBusinessNotFound
	case -3:
		return RedeemResult{}, ErrRewardNotFound
	case -4:
		return RedeemResult{}, ErrRewardInactive
	case -5:
		return RedeemResult{}, ErrInsufficientBalance
	case -6:
		return RedeemResult{}, ErrRedemptionCapReached
	}

	return RedeemResult{
		Redemption:         r,
		NewBalance:         int(res[1].(int64)),
		RewardRedemptions:  int(res[2].(int64)),
		ConsumedStampCount: int(res[3].(int64)),
	}, nil
}

func (s *RedisStore) ListRedemptions(ctx context.Context, customerID, businessID string) ([]Redemption, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.LRange(ctx, redemptionsKey(customerID, businessID), 0, -1).Result()
	if err != nil {
		return nil, transient("list redemptions", err)
	}
	return decodeAll[Redemption](raw)
}

func (s *RedisStore) CreateCampaign(ctx context.Context, campaign Campaign) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := campaignKey(campaign.ID)
	payload, err := json.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("failed to encode campaign: %w", err)
	}

	err = s.optimistic(ctx, "create campaign", func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, businessKey(campaign.BusinessID)).Result()
		if err != nil {
			return transient("create campaign", err)
		}
		if n == 0 {
			return ErrBusinessNotFound
		}
		if n, err = tx.Exists(ctx, key).Result(); err != nil {
			return transient("create campaign", err)
		}
		if n > 0 {
			return ErrAlreadyExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			pipe.SAdd(ctx, businessCampaignsKey(campaign.BusinessID), campaign.ID)
			if campaign.Status == CampaignStatusScheduled {
				pipe.ZAdd(ctx, scheduledCampaignsKey, redis.Z{Score: float64(campaign.StartDate.Unix()), Member: campaign.ID})
			}
			return nil
		})
		if err != nil {
			return transient("create campaign", err)
		}
		return nil
	}, key)
	return err
}

func (s *RedisStore) GetCampaign(ctx context.Context, campaignID string) (Campaign, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.Get(ctx, campaignKey(campaignID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Campaign{}, ErrCampaignNotFound
	}
	if err != nil {
		return Campaign{}, transient("get campaign", err)
	}
	var campaign Campaign
	if err := json.Unmarshal(raw, &campaign); err != nil {
		return Campaign{}, fmt.Errorf("failed to decode campaign: %w", err)
	}
	return campaign, nil
}

func (s *RedisStore) ListCampaigns(ctx context.Context, businessID string) ([]Campaign, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.SMembers(ctx, businessCampaignsKey(businessID)).Result()
	if err != nil {
		return nil, transient("list campaigns", err)
	}
	if len(ids) == 0 {
		return []Campaign{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = campaignKey(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, transient("list campaigns", err)
	}

	campaigns := make([]Campaign, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c Campaign
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("failed to decode campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	sortCampaigns(campaigns)
	return campaigns, nil
}

func (s *RedisStore) UpdateCampaign(ctx context.Context, campaignID string, mutate func(*Campaign) error) (Campaign, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	key := campaignKey(campaignID)
	var saved Campaign
	err := s.optimistic(ctx, "update campaign", func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrCampaignNotFound
		}
		if err != nil {
			return transient("update campaign", err)
		}

		var current Campaign
		if err := json.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("failed to decode campaign: %w", err)
		}
		next := current
		if err := mutate(&next); err != nil {
			return err
		}
		next.ID = current.ID
		next.BusinessID = current.BusinessID

		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode campaign: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			if next.Status == CampaignStatusScheduled {
				pipe.ZAdd(ctx, scheduledCampaignsKey, redis.Z{Score: float64(next.StartDate.Unix()), Member: next.ID})
			} else {
				pipe.ZRem(ctx, scheduledCampaignsKey, next.ID)
			}
			return nil
		})
		if err != nil {
			return transient("update campaign", err)
		}
		saved = next
		return nil
	}, key)
	if err != nil {
		return Campaign{}, err
	}
	return saved, nil
}

func (s *RedisStore) DueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ids, err := s.client.ZRangeByScore(ctx, scheduledCampaignsKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, transient("due scheduled campaigns", err)
	}
	return ids, nil
}

func (s *RedisStore) ClaimScheduledCampaign(ctx context.Context, campaignID string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	removed, err := s.client.ZRem(ctx, scheduledCampaignsKey, campaignID).Result()
	if err != nil {
		return false, transient("claim scheduled campaign", err)
	}
	return removed == 1, nil
}

func (s *RedisStore) EnqueueNotification(ctx context.Context, msg NotificationMessage) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := s.client.RPush(ctx, outboundQueueKey, payload).Err(); err != nil {
		return transient("enqueue notification", err)
	}
	return nil
}

func (s *RedisStore) DrainNotifications(ctx context.Context, max int) ([]NotificationMessage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if max <= 0 {
		n, err := s.client.LLen(ctx, outboundQueueKey).Result()
		if err != nil {
			return nil, transient("drain notifications", err)
		}
		if n == 0 {
			return []NotificationMessage{}, nil
		}
		max = int(n)
	}

	raw, err := s.client.LPopCount(ctx, outboundQueueKey, max).Result()
	if errors.Is(err, redis.Nil) {
		return []NotificationMessage{}, nil
	}
	if err != nil {
		return nil, transient("drain notifications", err)
	}
	return decodeAll[NotificationMessage](raw)
}

func (s *RedisStore) AppendTransaction(ctx context.Context, entry TransactionLogEntry) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode transaction: %w", err)
	}
	if err := s.client.RPush(ctx, transactionLogKey, payload).Err(); err != nil {
		return transient("append transaction", err)
	}
	return nil
}

func (s *RedisStore) ListTransactions(ctx context.Context, action string, since time.Time) ([]TransactionLogEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.client.LRange(ctx, transactionLogKey, 0, -1).Result()
	if err != nil {
		return nil, transient("list transactions", err)
	}
	entries, err := decodeAll[TransactionLogEntry](raw)
	if err != nil {
		return nil, err
	}
	return filterTransactions(entries, action, since), nil
}

func decodeAll[T any](raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal([]byte(r), &v); err != nil {
			return nil, fmt.Errorf("failed to decode %T: %w", v, err)
		}
		out = append(out, v)
	}
	return out, nil
}
