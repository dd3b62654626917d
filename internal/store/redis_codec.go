package store

import (
	"strconv"
	"time"
)

// Hash field layout for records whose counters are incremented inside Lua scripts

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func atoi(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

func customerToHash(c Customer) map[string]interface{} {
	return map[string]interface{}{
		"id":                      c.ID,
		"email":                   c.Email,
		"created_at":              formatTime(c.CreatedAt),
		"notifications_enabled":   formatBool(c.Notifications.Enabled),
		"notifications_campaigns": formatBool(c.Notifications.Campaigns),
	}
}

func customerFromHash(h map[string]string) Customer {
	return Customer{
		ID:               h["id"],
		Email:            h["email"],
		CreatedAt:        parseTime(h["created_at"]),
		TotalStamps:      atoi(h["total_stamps"]),
		TotalRedemptions: atoi(h["total_redemptions"]),
		Notifications: NotificationPreferences{
			Enabled:   h["notifications_enabled"] == "1",
			Campaigns: h["notifications_campaigns"] == "1",
		},
	}
}

func businessToHash(b Business) map[string]interface{} {
	return map[string]interface{}{
		"id":         b.ID,
		"name":       b.Name,
		"category":   b.Category,
		"created_at": formatTime(b.CreatedAt),
	}
}

func businessFromHash(h map[string]string) Business {
	return Business{
		ID:                h["id"],
		Name:              h["name"],
		Category:          h["category"],
		TotalStampsIssued: atoi(h["total_stamps_issued"]),
		TotalRedemptions:  atoi(h["total_redemptions"]),
		ActiveRewards:     atoi(h["active_rewards"]),
		CreatedAt:         parseTime(h["created_at"]),
	}
}

func rewardToHash(r Reward) map[string]interface{} {
	h := map[string]interface{}{
		"id":                  r.ID,
		"business_id":         r.BusinessID,
		"name":                r.Name,
		"stamps_required":     r.StampsRequired,
		"is_active":           formatBool(r.IsActive),
		"current_redemptions": r.CurrentRedemptions,
		"created_at":          formatTime(r.CreatedAt),
		"updated_at":          formatTime(r.UpdatedAt),
	}
	if r.Description != nil {
		h["description"] = *r.Description
	}
	if r.MaxRedemptions != nil {
		h["max_redemptions"] = *r.MaxRedemptions
	}
	return h
}

func rewardFromHash(h map[string]string) Reward {
	r := Reward{
		ID:                 h["id"],
		BusinessID:         h["business_id"],
		Name:               h["name"],
		StampsRequired:     atoi(h["stamps_required"]),
		IsActive:           h["is_active"] == "1",
		CurrentRedemptions: atoi(h["current_redemptions"]),
		CreatedAt:          parseTime(h["created_at"]),
		UpdatedAt:          parseTime(h["updated_at"]),
	}
	if v, ok := h["description"]; ok {
		r.Description = &v
	}
	if v, ok := h["max_redemptions"]; ok {
		n := atoi(v)
		r.MaxRedemptions = &n
	}
	return r
}
