// Package audience evaluates campaign target-audience predicates against a single customer.
package audience

import (
	"time"

	"loyalty-server/internal/store"
)

const (
	// Window bounds both "new" (created within) and "inactive" (no stamp within)
	Window = 30 * 24 * time.Hour
	// ReturningThreshold is the lifetime stamp count that makes a customer "returning"
	ReturningThreshold = 3
)

// Subject is what the predicate needs to know about one customer at one business
type Subject struct {
	Customer    store.Customer
	LastStampAt time.Time
	HasStamped  bool
}

// Valid reports whether audience is one of the known segments
func Valid(audience string) bool {
	switch audience {
	case store.AudienceAll, store.AudienceNew, store.AudienceReturning, store.AudienceInactive:
		return true
	}
	return false
}

// NeedsStampHistory reports whether Eligible reads LastStampAt for this audience
func NeedsStampHistory(audience string) bool {
	return audience == store.AudienceInactive
}

// Eligible evaluates the audience predicate at now. Unknown audiences match nobody.
func Eligible(audience string, s Subject, now time.Time) bool {
	switch audience {
	case store.AudienceAll:
		return true
	case store.AudienceNew:
		return !s.Customer.CreatedAt.IsZero() && now.Sub(s.Customer.CreatedAt) <= Window
	case store.AudienceReturning:
		return s.Customer.TotalStamps >= ReturningThreshold
	case store.AudienceInactive:
		// never stamped counts as inactive
		return !s.HasStamped || now.Sub(s.LastStampAt) > Window
	default:
		return false
	}
}
