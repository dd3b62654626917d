package apierrors

import (
	"errors"

	analyticsProcessor "loyalty-server/internal/analytics/processor"
	authProcessor "loyalty-server/internal/auth/processor"
	campaignProcessor "loyalty-server/internal/campaign/processor"
	ledgerProcessor "loyalty-server/internal/ledger/processor"
	redemptionProcessor "loyalty-server/internal/redemption/processor"
	rewardsProcessor "loyalty-server/internal/rewards/processor"
	"loyalty-server/internal/store"
)

// MapError converts processor errors to APIErrors.
//
// An APIError is returned as-is. Unknown errors become a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Auth
	case errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Token expired")
	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken),
		errors.Is(err, authProcessor.ErrInvalidRole),
		errors.Is(err, authProcessor.ErrMissingBusiness):
		return Unauthorized("Invalid token")

	// Ledger
	case errors.Is(err, ledgerProcessor.ErrCustomerNotFound),
		errors.Is(err, redemptionProcessor.ErrCustomerNotFound):
		return NotFound(CodeCustomerNotFound, "Customer not found")
	case errors.Is(err, ledgerProcessor.ErrBusinessNotFound),
		errors.Is(err, rewardsProcessor.ErrBusinessNotFound),
		errors.Is(err, redemptionProcessor.ErrBusinessNotFound),
		errors.Is(err, campaignProcessor.ErrBusinessNotFound):
		return NotFound(CodeBusinessNotFound, "Business not found")
	case errors.Is(err, ledgerProcessor.ErrInvalidInput):
		return BadRequest(CodeInvalidInput, "Invalid stamp request")
	case errors.Is(err, ledgerProcessor.ErrInvalidDate):
		return BadRequest(CodeInvalidDate, "Invalid date, expected YYYY-MM-DD")

	// Rewards
	case errors.Is(err, rewardsProcessor.ErrRewardNotFound),
		errors.Is(err, redemptionProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")
	case errors.Is(err, rewardsProcessor.ErrInvalidReward):
		return BadRequest(CodeInvalidInput, "Invalid reward")
	case errors.Is(err, rewardsProcessor.ErrRewardIDConflict):
		return Conflict(CodeRewardIDConflict, "Reward id belongs to another business")

	// Redemption
	case errors.Is(err, redemptionProcessor.ErrRewardInactive):
		return Conflict(CodeRewardInactive, "Reward is not active")
	case errors.Is(err, redemptionProcessor.ErrInsufficientBalance):
		return Conflict(CodeInsufficientStamps, "Not enough stamps to redeem this reward")
	case errors.Is(err, redemptionProcessor.ErrRedemptionCapReached):
		return Conflict(CodeRedemptionCap, "Reward redemption limit reached")
	case errors.Is(err, redemptionProcessor.ErrInvalidInput):
		return BadRequest(CodeInvalidInput, "Invalid redemption request")

	// Campaign
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")
	case errors.Is(err, campaignProcessor.ErrInvalidCampaign):
		return BadRequest(CodeInvalidInput, "Invalid campaign")
	case errors.Is(err, campaignProcessor.ErrInvalidCampaignStatus):
		return BadRequest(CodeInvalidStatus, "Invalid campaign status")
	case errors.Is(err, campaignProcessor.ErrInvalidAudience):
		return BadRequest(CodeInvalidAudience, "Invalid target audience. Valid values: all, new, returning, inactive")
	case errors.Is(err, campaignProcessor.ErrCampaignTerminal):
		return Conflict(CodeInvalidState, "Campaign is completed or cancelled")

	// Analytics
	case errors.Is(err, analyticsProcessor.ErrInvalidScan):
		return BadRequest(CodeInvalidInput, "Scan needs a business and a reward or campaign id")
	case errors.Is(err, analyticsProcessor.ErrInvalidToken):
		return BadRequest(CodeInvalidInput, "Token id is required")

	// Store errors that escaped a processor
	case store.IsTransient(err):
		return ServiceUnavailable(err)
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	case errors.Is(err, store.ErrAlreadyExists):
		return Conflict(CodeConflict, "Resource already exists")
	}

	return InternalError(err)
}
