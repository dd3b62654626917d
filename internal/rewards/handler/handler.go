package handler

import (
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/rewards/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.RewardProcessor
	logger    *observability.Logger
}

func New(processor processor.RewardProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpsertRewardRequest represents the HTTP request for creating or replacing a reward.
// Omitted optional fields are cleared on replacement.
type UpsertRewardRequest struct {
	ID             string  `json:"id,omitempty" binding:"max=128"`
	Name           string  `json:"name" binding:"required,max=255"`
	Description    *string `json:"description,omitempty"`
	StampsRequired int     `json:"stamps_required" binding:"required,gte=1"`
	IsActive       *bool   `json:"is_active,omitempty"`
	MaxRedemptions *int    `json:"max_redemptions,omitempty" binding:"omitempty,gte=0"`
}

// HandleUpsertReward creates a reward, or replaces it when the supplied id already exists
func (h *Handler) HandleUpsertReward(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpsertRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.UpsertReward(ctx, c.Param("business_id"), processor.UpsertRewardParams{
		ID:             req.ID,
		Name:           req.Name,
		Description:    req.Description,
		StampsRequired: req.StampsRequired,
		IsActive:       req.IsActive,
		MaxRedemptions: req.MaxRedemptions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result.Reward)
}

func (h *Handler) HandleGetReward(c *gin.Context) {
	reward, err := h.processor.GetReward(c.Request.Context(), c.Param("business_id"), c.Param("reward_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reward)
}

func (h *Handler) HandleListRewards(c *gin.Context) {
	rewards, err := h.processor.ListRewards(c.Request.Context(), c.Param("business_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

func (h *Handler) HandleDeactivateReward(c *gin.Context) {
	reward, err := h.processor.DeactivateReward(c.Request.Context(), c.Param("business_id"), c.Param("reward_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reward)
}
