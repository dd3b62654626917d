package store

import "fmt"

// Key layout of the shared store
const (
	scheduledCampaignsKey = "campaigns:scheduled"
	outboundQueueKey      = "notifications:outbound"
	transactionLogKey     = "transaction_log"
)

func customerKey(customerID string) string { return "customer:" + customerID }

func businessKey(businessID string) string { return "business:" + businessID }

func businessCustomersKey(businessID string) string {
	return fmt.Sprintf("business:%s:customers", businessID)
}

func businessRewardsKey(businessID string) string {
	return fmt.Sprintf("business:%s:rewards", businessID)
}

func businessCampaignsKey(businessID string) string {
	return fmt.Sprintf("business:%s:campaigns", businessID)
}

func stampsKey(customerID, businessID string) string {
	return fmt.Sprintf("stamps:%s:%s", customerID, businessID)
}

func lastStampKey(customerID, businessID string) string {
	return fmt.Sprintf("laststamp:%s:%s", customerID, businessID)
}

func redemptionsKey(customerID, businessID string) string {
	return fmt.Sprintf("redemptions:%s:%s", customerID, businessID)
}

func rewardKey(rewardID string) string { return "reward:" + rewardID }

func campaignKey(campaignID string) string { return "campaign:" + campaignID }

func dailyStatsKey(day string) string { return "stats:daily:" + day }

func stampIdempotencyKey(customerID, businessID, key string) string {
	return fmt.Sprintf("idem:stamp:%s:%s:%s", businessID, customerID, key)
}
