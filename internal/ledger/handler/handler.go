package handler

import (
	"net/http"
	"time"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/ledger/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.LedgerProcessor
	logger    *observability.Logger
}

func New(processor processor.LedgerProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// IssueStampRequest represents the HTTP request for issuing a stamp
type IssueStampRequest struct {
	CustomerID string  `json:"customer_id" binding:"required,max=128"`
	RewardID   *string `json:"reward_id,omitempty"`
	Method     string  `json:"method,omitempty" binding:"omitempty,oneof=manual qr nfc scan"`
}

type UpsertCustomerRequest struct {
	Email                 string     `json:"email" binding:"omitempty,email"`
	NotificationsEnabled  bool       `json:"notifications_enabled"`
	CampaignNotifications bool       `json:"campaign_notifications"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
}

type UpsertBusinessRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"max=128"`
}

type BalanceResponse struct {
	CustomerID string `json:"customer_id"`
	BusinessID string `json:"business_id"`
	Balance    int    `json:"balance"`
}

// HandleIssueStamp appends a stamp. An Idempotency-Key header makes retries safe.
func (h *Handler) HandleIssueStamp(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueStampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.IssueStamp(ctx, processor.IssueStampParams{
		CustomerID:     req.CustomerID,
		BusinessID:     c.Param("business_id"),
		RewardID:       req.RewardID,
		Method:         req.Method,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

func (h *Handler) HandleGetBalance(c *gin.Context) {
	ctx := c.Request.Context()
	customerID := c.Param("customer_id")
	businessID := c.Param("business_id")

	balance, err := h.processor.GetBalance(ctx, customerID, businessID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{CustomerID: customerID, BusinessID: businessID, Balance: balance})
}

func (h *Handler) HandleListStamps(c *gin.Context) {
	ctx := c.Request.Context()

	stamps, err := h.processor.ListStamps(ctx, c.Param("customer_id"), c.Param("business_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stamps": stamps})
}

// HandleGetDailyStats returns global counters for ?date=YYYY-MM-DD, defaulting to today (UTC)
func (h *Handler) HandleGetDailyStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.processor.GetDailyStats(ctx, c.Query("date"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) HandleUpsertCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpsertCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	customer, err := h.processor.UpsertCustomer(ctx, processor.UpsertCustomerParams{
		ID:                    c.Param("customer_id"),
		Email:                 req.Email,
		NotificationsEnabled:  req.NotificationsEnabled,
		CampaignNotifications: req.CampaignNotifications,
		CreatedAt:             req.CreatedAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *Handler) HandleGetCustomer(c *gin.Context) {
	customer, err := h.processor.GetCustomer(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) HandleUpsertBusiness(c *gin.Context) {
	ctx := c.Request.Context()

	var req UpsertBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	business, err := h.processor.UpsertBusiness(ctx, processor.UpsertBusinessParams{
		ID:       c.Param("business_id"),
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *Handler) HandleGetBusiness(c *gin.Context) {
	business, err := h.processor.GetBusiness(c.Request.Context(), c.Param("business_id"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, business)
}

func (h *Handler) HandleEnrollCustomer(c *gin.Context) {
	if err := h.processor.EnrollCustomer(c.Request.Context(), c.Param("business_id"), c.Param("customer_id")); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
