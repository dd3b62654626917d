package store

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"
)

const stampIdempotencyTTL = 24 * time.Hour

type pairKey struct {
	customerID string
	businessID string
}

// idempotencyKey scopes a client key to the (customer, business) pair it was issued for
type idempotencyKey struct {
	pair pairKey
	key  string
}

type idempotentStamp struct {
	event     StampEvent
	expiresAt time.Time
}

// MemoryStore keeps all ledger state in process memory behind a single mutex.
// Every multi-step operation runs inside one critical section, which gives the same
// atomicity as the Lua scripts of RedisStore.
type MemoryStore struct {
	mu sync.Mutex

	customers         map[string]Customer
	businesses        map[string]Business
	businessCustomers map[string]map[string]struct{}
	stamps            map[pairKey][]StampEvent
	lastStamp         map[pairKey]time.Time
	idempotency       map[idempotencyKey]idempotentStamp
	dailyStats        map[string]DailyStats

	rewards         map[string]Reward
	businessRewards map[string]map[string]struct{}
	redemptions     map[pairKey][]Redemption

	campaigns         map[string]Campaign
	businessCampaigns map[string]map[string]struct{}
	scheduled         map[string]int64

	outbound []NotificationMessage
	txLog    []TransactionLogEntry

	now func() time.Time
}

var _ Storer = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:         make(map[string]Customer),
		businesses:        make(map[string]Business),
		businessCustomers: make(map[string]map[string]struct{}),
		stamps:            make(map[pairKey][]StampEvent),
		lastStamp:         make(map[pairKey]time.Time),
		idempotency:       make(map[idempotencyKey]idempotentStamp),
		dailyStats:        make(map[string]DailyStats),
		rewards:           make(map[string]Reward),
		businessRewards:   make(map[string]map[string]struct{}),
		redemptions:       make(map[pairKey][]Redemption),
		campaigns:         make(map[string]Campaign),
		businessCampaigns: make(map[string]map[string]struct{}),
		scheduled:         make(map[string]int64),
		now:               time.Now,
	}
}

func addToSet(sets map[string]map[string]struct{}, key, member string) {
	set, ok := sets[key]
	if !ok {
		set = make(map[string]struct{})
		sets[key] = set
	}
	set[member] = struct{}{}
}

func sortedMembers(set map[string]struct{}) []string {
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

func (s *MemoryStore) UpsertCustomer(ctx context.Context, customer Customer) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.customers[customer.ID]; ok {
		customer.TotalStamps = existing.TotalStamps
		customer.TotalRedemptions = existing.TotalRedemptions
		if customer.CreatedAt.IsZero() {
			customer.CreatedAt = existing.CreatedAt
		}
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = s.now().UTC()
	}
	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *MemoryStore) GetCustomer(ctx context.Context, customerID string) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[customerID]
	if !ok {
		return Customer{}, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *MemoryStore) UpsertBusiness(ctx context.Context, business Business) (Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.businesses[business.ID]; ok {
		business.TotalStampsIssued = existing.TotalStampsIssued
		business.TotalRedemptions = existing.TotalRedemptions
		business.ActiveRewards = existing.ActiveRewards
		if business.CreatedAt.IsZero() {
			business.CreatedAt = existing.CreatedAt
		}
	} else {
		business.TotalStampsIssued = 0
		business.TotalRedemptions = 0
		business.ActiveRewards = 0
	}
	if business.CreatedAt.IsZero() {
		business.CreatedAt = s.now().UTC()
	}
	s.businesses[business.ID] = business
	return business, nil
}

func (s *MemoryStore) GetBusiness(ctx context.Context, businessID string) (Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	business, ok := s.businesses[businessID]
	if !ok {
		return Business{}, ErrBusinessNotFound
	}
	return business, nil
}

func (s *MemoryStore) EnrollCustomer(ctx context.Context, businessID, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.businesses[businessID]; !ok {
		return ErrBusinessNotFound
	}
	if _, ok := s.customers[customerID]; !ok {
		return ErrCustomerNotFound
	}
	addToSet(s.businessCustomers, businessID, customerID)
	return nil
}

func (s *MemoryStore) ListBusinessCustomerIDs(ctx context.Context, businessID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedMembers(s.businessCustomers[businessID]), nil
}

func (s *MemoryStore) AppendStamp(ctx context.Context, params AppendStampParams) (AppendStampResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := params.Event
	customer, ok := s.customers[event.CustomerID]
	if !ok {
		return AppendStampResult{}, ErrCustomerNotFound
	}
	business, ok := s.businesses[event.BusinessID]
	if !ok {
		return AppendStampResult{}, ErrBusinessNotFound
	}

	pair := pairKey{event.CustomerID, event.BusinessID}
	idemKey := idempotencyKey{pair: pair, key: params.IdempotencyKey}
	if params.IdempotencyKey != "" {
		if prior, ok := s.idempotency[idemKey]; ok && s.now().Before(prior.expiresAt) {
			return AppendStampResult{
				Event:    prior.event,
				Balance:  len(s.stamps[pair]),
				Replayed: true,
			}, nil
		}
	}

	s.stamps[pair] = append(s.stamps[pair], event)
	s.lastStamp[pair] = event.IssuedAt
	addToSet(s.businessCustomers, event.BusinessID, event.CustomerID)

	customer.TotalStamps++
	s.customers[customer.ID] = customer
	business.TotalStampsIssued++
	s.businesses[business.ID] = business

	day := DayKey(event.IssuedAt)
	stats := s.dailyStats[day]
	stats.Date = day
	stats.Stamps++
	s.dailyStats[day] = stats

	if params.IdempotencyKey != "" {
		s.pruneIdempotencyKeys()
		s.idempotency[idemKey] = idempotentStamp{
			event:     event,
			expiresAt: s.now().Add(stampIdempotencyTTL),
		}
	}

	return AppendStampResult{Event: event, Balance: len(s.stamps[pair])}, nil
}

// pruneIdempotencyKeys drops expired keys. Callers hold s.mu.
func (s *MemoryStore) pruneIdempotencyKeys() {
	now := s.now()
	for key, entry := range s.idempotency {
		if !now.Before(entry.expiresAt) {
			delete(s.idempotency, key)
		}
	}
}

func (s *MemoryStore) StampBalance(ctx context.Context, customerID, businessID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.stamps[pairKey{customerID, businessID}]), nil
}

func (s *MemoryStore) ListStamps(ctx context.Context, customerID, businessID string) ([]StampEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.stamps[pairKey{customerID, businessID}]), nil
}

func (s *MemoryStore) LastStampAt(ctx context.Context, customerID, businessID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.lastStamp[pairKey{customerID, businessID}]
	return at, ok, nil
}

func (s *MemoryStore) GetDailyStats(ctx context.Context, day string) (DailyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.dailyStats[day]
	if !ok {
		return DailyStats{Date: day}, nil
	}
	return stats, nil
}

func (s *MemoryStore) UpsertReward(ctx context.Context, reward Reward) (Reward, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	business, ok := s.businesses[reward.BusinessID]
	if !ok {
		return Reward{}, false, ErrBusinessNotFound
	}

	existing, exists := s.rewards[reward.ID]
	if exists && existing.BusinessID != reward.BusinessID {
		return Reward{}, false, ErrAlreadyExists
	}

	delta := 0
	if exists {
		reward.CurrentRedemptions = existing.CurrentRedemptions
		reward.CreatedAt = existing.CreatedAt
		if existing.IsActive != reward.IsActive {
			delta = activeDelta(reward.IsActive)
		}
	} else {
		reward.CurrentRedemptions = 0
		if reward.IsActive {
			delta = 1
		}
	}

	s.rewards[reward.ID] = reward
	addToSet(s.businessRewards, reward.BusinessID, reward.ID)
	business.ActiveRewards += delta
	s.businesses[business.ID] = business

	return reward, !exists, nil
}

func activeDelta(nowActive bool) int {
	if nowActive {
		return 1
	}
	return -1
}

func (s *MemoryStore) GetReward(ctx context.Context, rewardID string) (Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewards[rewardID]
	if !ok {
		return Reward{}, ErrRewardNotFound
	}
	return reward, nil
}

func (s *MemoryStore) ListRewards(ctx context.Context, businessID string) ([]Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := sortedMembers(s.businessRewards[businessID])
	rewards := make([]Reward, 0, len(ids))
	for _, id := range ids {
		rewards = append(rewards, s.rewards[id])
	}
	sortRewards(rewards)
	return rewards, nil
}

func (s *MemoryStore) DeactivateReward(ctx context.Context, rewardID string) (Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward, ok := s.rewards[rewardID]
	if !ok {
		return Reward{}, ErrRewardNotFound
	}
	if !reward.IsActive {
		return reward, nil
	}

	reward.IsActive = false
	reward.UpdatedAt = s.now().UTC()
	s.rewards[rewardID] = reward

	if business, ok := s.businesses[reward.BusinessID]; ok {
		business.ActiveRewards--
		s.businesses[business.ID] = business
	}
	return reward, nil
}

func (s *MemoryStore) Redeem(ctx context.Context, params RedeemParams) (RedeemResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	redemption := params.Redemption
	customer, ok := s.customers[redemption.CustomerID]
	if !ok {
		return RedeemResult{}, ErrCustomerNotFound
	}
	business, ok := s.businesses[redemption.BusinessID]
	if !ok {
		return RedeemResult{}, ErrBusinessNotFound
	}
	reward, ok := s.rewards[redemption.RewardID]
	if !ok || reward.BusinessID != redemption.BusinessID {
		return RedeemResult{}, ErrRewardNotFound
	}
	if !reward.IsActive {
		return RedeemResult{}, ErrRewardInactive
	}

	pair := pairKey{redemption.CustomerID, redemption.BusinessID}
	balance := len(s.stamps[pair])
	if balance < reward.StampsRequired {
		return RedeemResult{}, ErrInsufficientBalance
	}
	if reward.MaxRedemptions != nil && reward.CurrentRedemptions >= *reward.MaxRedemptions {
		return RedeemResult{}, ErrRedemptionCapReached
	}

	// oldest stamps are consumed first
	s.stamps[pair] = slices.Clone(s.stamps[pair][reward.StampsRequired:])
	s.redemptions[pair] = append(s.redemptions[pair], redemption)

	reward.CurrentRedemptions++
	s.rewards[reward.ID] = reward
	business.TotalRedemptions++
	s.businesses[business.ID] = business
	customer.TotalRedemptions++
	s.customers[customer.ID] = customer

	day := DayKey(redemption.RedeemedAt)
	stats := s.dailyStats[day]
	stats.Date = day
	stats.Redemptions++
	s.dailyStats[day] = stats

	return RedeemResult{
		Redemption:         redemption,
		NewBalance:         len(s.stamps[pair]),
		RewardRedemptions:  reward.CurrentRedemptions,
		ConsumedStampCount: reward.StampsRequired,
	}, nil
}

func (s *MemoryStore) ListRedemptions(ctx context.Context, customerID, businessID string) ([]Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.redemptions[pairKey{customerID, businessID}]
	out := make([]Redemption, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
	}
	return out, nil
}

func cloneCampaign(c Campaign) Campaign {
	c.Conditions = maps.Clone(c.Conditions)
	return c
}

func (s *MemoryStore) CreateCampaign(ctx context.Context, campaign Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.businesses[campaign.BusinessID]; !ok {
		return ErrBusinessNotFound
	}
	if _, ok := s.campaigns[campaign.ID]; ok {
		return ErrAlreadyExists
	}

	s.campaigns[campaign.ID] = cloneCampaign(campaign)
	addToSet(s.businessCampaigns, campaign.BusinessID, campaign.ID)
	if campaign.Status == CampaignStatusScheduled {
		s.scheduled[campaign.ID] = campaign.StartDate.Unix()
	}
	return nil
}

func (s *MemoryStore) GetCampaign(ctx context.Context, campaignID string) (Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[campaignID]
	if !ok {
		return Campaign{}, ErrCampaignNotFound
	}
	return cloneCampaign(campaign), nil
}

func (s *MemoryStore) ListCampaigns(ctx context.Context, businessID string) ([]Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := sortedMembers(s.businessCampaigns[businessID])
	campaigns := make([]Campaign, 0, len(ids))
	for _, id := range ids {
		campaigns = append(campaigns, cloneCampaign(s.campaigns[id]))
	}
	sortCampaigns(campaigns)
	return campaigns, nil
}

func (s *MemoryStore) UpdateCampaign(ctx context.Context, campaignID string, mutate func(*Campaign) error) (Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.campaigns[campaignID]
	if !ok {
		return Campaign{}, ErrCampaignNotFound
	}

	updated := cloneCampaign(current)
	if err := mutate(&updated); err != nil {
		return Campaign{}, err
	}
	updated.ID = current.ID
	updated.BusinessID = current.BusinessID

	s.campaigns[campaignID] = updated
	if updated.Status == CampaignStatusScheduled {
		s.scheduled[campaignID] = updated.StartDate.Unix()
	} else {
		delete(s.scheduled, campaignID)
	}
	return cloneCampaign(updated), nil
}

func (s *MemoryStore) DueScheduledCampaigns(ctx context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Unix()
	due := make([]string, 0)
	for id, score := range s.scheduled {
		if score <= cutoff {
			due = append(due, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if s.scheduled[due[i]] != s.scheduled[due[j]] {
			return s.scheduled[due[i]] < s.scheduled[due[j]]
		}
		return due[i] < due[j]
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (s *MemoryStore) ClaimScheduledCampaign(ctx context.Context, campaignID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scheduled[campaignID]; !ok {
		return false, nil
	}
	delete(s.scheduled, campaignID)
	return true, nil
}

func (s *MemoryStore) EnqueueNotification(ctx context.Context, msg NotificationMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbound = append(s.outbound, msg)
	return nil
}

func (s *MemoryStore) DrainNotifications(ctx context.Context, max int) ([]NotificationMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.outbound)
	if max > 0 && max < n {
		n = max
	}
	drained := slices.Clone(s.outbound[:n])
	s.outbound = slices.Clone(s.outbound[n:])
	return drained, nil
}

func (s *MemoryStore) AppendTransaction(ctx context.Context, entry TransactionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txLog = append(s.txLog, entry)
	return nil
}

func (s *MemoryStore) ListTransactions(ctx context.Context, action string, since time.Time) ([]TransactionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filterTransactions(s.txLog, action, since), nil
}

// filterTransactions keeps log order and drops entries older than since when since is set
func filterTransactions(entries []TransactionLogEntry, action string, since time.Time) []TransactionLogEntry {
	out := make([]TransactionLogEntry, 0, len(entries))
	for _, e := range entries {
		if action != "" && e.Action != action {
			continue
		}
		if !since.IsZero() && e.Timestamp.Before(since) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sortRewards(rewards []Reward) {
	sort.SliceStable(rewards, func(i, j int) bool {
		if !rewards[i].CreatedAt.Equal(rewards[j].CreatedAt) {
			return rewards[i].CreatedAt.Before(rewards[j].CreatedAt)
		}
		return rewards[i].ID < rewards[j].ID
	})
}

func sortCampaigns(campaigns []Campaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		if !campaigns[i].CreatedAt.Equal(campaigns[j].CreatedAt) {
			return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
		}
		return campaigns[i].ID < campaigns[j].ID
	})
}
