package handler

import (
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/redemption/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.RedemptionProcessor
	logger    *observability.Logger
}

func New(processor processor.RedemptionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type RedeemRequest struct {
	CustomerID string `json:"customer_id" binding:"required,max=128"`
	RewardID   string `json:"reward_id" binding:"required,max=128"`
}

func (h *Handler) HandleRedeem(c *gin.Context) {
	ctx := c.Request.Context()

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Redeem(ctx, processor.RedeemParams{
		CustomerID: req.CustomerID,
		BusinessID: c.Param("business_id"),
		RewardID:   req.RewardID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) HandleListRedemptions(c *gin.Context) {
	redemptions, err := h.processor.ListRedemptions(c.Request.Context(), c.Param("customer_id"), c.Param("business_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}
