package handler

import (
	"net/http"
	"time"

	"loyalty-server/internal/analytics/processor"
	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecordScanRequest represents a token presented at the business
type RecordScanRequest struct {
	RewardID   string     `json:"reward_id" binding:"required_without=CampaignID"`
	CampaignID string     `json:"campaign_id" binding:"required_without=RewardID"`
	CustomerID string     `json:"customer_id,omitempty"`
	ScannedAt  *time.Time `json:"scanned_at,omitempty"`
}

func (h *Handler) HandleRecordScan(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.RecordScanParams{
		BusinessID: c.Param("business_id"),
		RewardID:   req.RewardID,
		CampaignID: req.CampaignID,
		CustomerID: req.CustomerID,
	}
	if req.ScannedAt != nil {
		params.ScannedAt = *req.ScannedAt
	}

	entry, err := h.processor.RecordScan(ctx, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) HandleGetTokenScanStats(c *gin.Context) {
	stats, err := h.processor.GetTokenScanStats(c.Request.Context(), c.Param("business_id"), c.Param("token_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
