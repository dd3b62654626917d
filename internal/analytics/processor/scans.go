package processor

import (
	"strings"
	"time"

	"loyalty-server/internal/store"
)

const (
	ShortWindow = 30 * 24 * time.Hour
	LongWindow  = 90 * 24 * time.Hour
)

type ScanStats struct {
	LastScanAt  *time.Time `json:"last_scan_at"`
	ScansLast30 int        `json:"scans_last_30"`
	ScansLast90 int        `json:"scans_last_90"`
	TotalScans  int        `json:"total_scans"`
}

// AnalyzeScans aggregates the SCAN entries of businessID that reference tokenID through
// their reward or campaign id. With substring set, an id containing tokenID also matches.
// Entries are inside a window when now minus their timestamp does not exceed it, so
// future-dated entries count in both windows.
func AnalyzeScans(entries []store.TransactionLogEntry, tokenID, businessID string, now time.Time, substring bool) ScanStats {
	var stats ScanStats
	if tokenID == "" {
		return stats
	}

	for _, e := range entries {
		if e.Action != store.ActionScan || e.Data.BusinessID != businessID {
			continue
		}
		if !matchesToken(e.Data, tokenID, substring) {
			continue
		}

		stats.TotalScans++
		age := now.Sub(e.Timestamp)
		if age <= LongWindow {
			stats.ScansLast90++
		}
		if age <= ShortWindow {
			stats.ScansLast30++
		}
		if stats.LastScanAt == nil || e.Timestamp.After(*stats.LastScanAt) {
			ts := e.Timestamp
			stats.LastScanAt = &ts
		}
	}
	return stats
}

func matchesToken(d store.TransactionData, tokenID string, substring bool) bool {
	if d.RewardID == tokenID || d.CampaignID == tokenID {
		return true
	}
	if !substring {
		return false
	}
	return (d.RewardID != "" && strings.Contains(d.RewardID, tokenID)) ||
		(d.CampaignID != "" && strings.Contains(d.CampaignID, tokenID))
}
