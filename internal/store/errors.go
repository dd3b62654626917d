package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrAlreadyExists         = errors.New("already exists")
	ErrTransientStoreFailure = errors.New("transient store failure")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrRedemptionCapReached  = errors.New("redemption cap reached")
	ErrRewardInactive        = errors.New("reward inactive")
	ErrCampaignTerminal      = errors.New("campaign is in a terminal state")
	ErrCustomerNotFound      = fmt.Errorf("customer %w", ErrNotFound)
	ErrBusinessNotFound      = fmt.Errorf("business %w", ErrNotFound)
	ErrRewardNotFound        = fmt.Errorf("reward %w", ErrNotFound)
	ErrCampaignNotFound      = fmt.Errorf("campaign %w", ErrNotFound)
	errOptimisticConflict    = errors.New("optimistic update kept conflicting")
)

// IsTransient reports whether err may succeed on retry
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientStoreFailure)
}

// transient tags infrastructure failures so callers can tell them apart from business-rule failures
func transient(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransientStoreFailure, err)
}
