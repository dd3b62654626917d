package api

import (
	"net/http"

	analyticsHandler "loyalty-server/internal/analytics/handler"
	authHandler "loyalty-server/internal/auth/handler"
	campaignHandler "loyalty-server/internal/campaign/handler"
	ledgerHandler "loyalty-server/internal/ledger/handler"
	"loyalty-server/internal/notifications"
	redemptionHandler "loyalty-server/internal/redemption/handler"
	"loyalty-server/internal/ratelimit"
	rewardsHandler "loyalty-server/internal/rewards/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every feature handler the router needs
type Handlers struct {
	Auth          authHandler.Handler
	Ledger        ledgerHandler.Handler
	Rewards       rewardsHandler.Handler
	Redemption    redemptionHandler.Handler
	Campaign      campaignHandler.Handler
	Analytics     analyticsHandler.Handler
	Notifications notifications.Handler

	// RateLimit is optional and applies to business-scoped routes
	RateLimit *ratelimit.Service
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
}

func New(router *gin.RouterGroup, handlers Handlers) API {
	return API{
		router:   router,
		handlers: handlers,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	h := a.handlers
	v1 := a.router.Group("/api/v1", h.Auth.HandleJWTMiddleware)

	operator := v1.Group("", h.Auth.RequireOperator)
	{
		operator.GET("/stats/daily", h.Ledger.HandleGetDailyStats)
		operator.PUT("/customers/:customer_id", h.Ledger.HandleUpsertCustomer)
		operator.GET("/customers/:customer_id", h.Ledger.HandleGetCustomer)
		operator.POST("/ops/campaigns/promote", h.Campaign.HandlePromoteDueCampaigns)
		operator.POST("/ops/notifications/drain", h.Notifications.HandleDrain)
	}

	business := v1.Group("/businesses/:business_id", h.Auth.RequireBusinessAccess)
	if h.RateLimit != nil {
		business.Use(h.RateLimit.Middleware())
	}
	{
		business.PUT("", h.Ledger.HandleUpsertBusiness)
		business.GET("", h.Ledger.HandleGetBusiness)

		business.POST("/stamps", h.Ledger.HandleIssueStamp)
		business.POST("/customers/:customer_id/enroll", h.Ledger.HandleEnrollCustomer)
		business.GET("/customers/:customer_id/balance", h.Ledger.HandleGetBalance)
		business.GET("/customers/:customer_id/stamps", h.Ledger.HandleListStamps)
		business.GET("/customers/:customer_id/redemptions", h.Redemption.HandleListRedemptions)

		business.POST("/rewards", h.Rewards.HandleUpsertReward)
		business.GET("/rewards", h.Rewards.HandleListRewards)
		business.GET("/rewards/:reward_id", h.Rewards.HandleGetReward)
		business.DELETE("/rewards/:reward_id", h.Rewards.HandleDeactivateReward)

		business.POST("/redemptions", h.Redemption.HandleRedeem)

		business.POST("/campaigns", h.Campaign.HandleCreateCampaign)
		business.GET("/campaigns", h.Campaign.HandleListCampaigns)
		business.GET("/campaigns/:campaign_id", h.Campaign.HandleGetCampaign)
		business.PATCH("/campaigns/:campaign_id/status", h.Campaign.HandleUpdateCampaignStatus)

		business.POST("/scans", h.Analytics.HandleRecordScan)
		business.GET("/tokens/:token_id/scans", h.Analytics.HandleGetTokenScanStats)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
