package handler

import (
	"net/http"
	"time"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/campaign/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name                string         `json:"name" binding:"required,max=255"`
	Type                string         `json:"type" binding:"required,max=64"`
	StartDate           time.Time      `json:"start_date" binding:"required"`
	EndDate             time.Time      `json:"end_date" binding:"required"`
	TargetAudience      string         `json:"target_audience" binding:"required,oneof=all new returning inactive"`
	Conditions          map[string]any `json:"conditions,omitempty"`
	NotificationMessage *string        `json:"notification_message,omitempty"`
}

// UpdateCampaignStatusRequest represents the HTTP request for changing a campaign's status
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft scheduled active paused completed cancelled"`
}

func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		BusinessID:          c.Param("business_id"),
		Name:                req.Name,
		Type:                req.Type,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		TargetAudience:      req.TargetAudience,
		Conditions:          req.Conditions,
		NotificationMessage: req.NotificationMessage,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

func (h *Handler) HandleUpdateCampaignStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpdateCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.SetCampaignStatus(ctx, processor.SetCampaignStatusParams{
		CampaignID: c.Param("campaign_id"),
		BusinessID: c.Param("business_id"),
		Status:     req.Status,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleGetCampaign(c *gin.Context) {
	campaign, err := h.processor.GetCampaign(c.Request.Context(), c.Param("business_id"), c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListCampaigns(c.Request.Context(), c.Param("business_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandlePromoteDueCampaigns runs one promotion sweep immediately; operator only
func (h *Handler) HandlePromoteDueCampaigns(c *gin.Context) {
	result, err := h.processor.PromoteDueCampaigns(c.Request.Context(), time.Now(), 0)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
