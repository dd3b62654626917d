package handler

import (
	"strings"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/auth/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Context keys set by HandleJWTMiddleware
const (
	ContextClaims     = "Claims"
	ContextSubject    = "Subject"
	ContextBusinessID = "Business-ID"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		c.Abort()
		return
	}

	c.Set(ContextClaims, claims)
	c.Set(ContextSubject, claims.Subject)
	if claims.BusinessID != "" {
		c.Set(ContextBusinessID, claims.BusinessID)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subject", Value: claims.Subject},
		observability.Field{Key: "role", Value: claims.Role},
	)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// RequireBusinessAccess rejects requests whose token cannot act on the :business_id path parameter.
// Must run after HandleJWTMiddleware.
func (h *Handler) RequireBusinessAccess(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	businessID := c.Param("business_id")
	if !claims.CanAccess(businessID) {
		h.logger.Warn(c.Request.Context(), "token not scoped to requested business")
		apierrors.RespondWithError(c, apierrors.Forbidden("You do not have access to this business"))
		c.Abort()
		return
	}

	c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "business_id", Value: businessID},
	))
	c.Next()
}

// RequireOperator restricts a route group to operator tokens
func (h *Handler) RequireOperator(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok || claims.Role != processor.RoleOperator {
		apierrors.RespondWithError(c, apierrors.Forbidden("Operator access required"))
		c.Abort()
		return
	}
	c.Next()
}

func claimsFromContext(c *gin.Context) (processor.BusinessClaims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return processor.BusinessClaims{}, false
	}
	claims, ok := v.(processor.BusinessClaims)
	return claims, ok
}
