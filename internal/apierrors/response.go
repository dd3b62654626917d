package apierrors

import (
	"errors"
	"net/http"

	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError maps err and writes the sanitized response.
// Processors have already logged the detailed error; this log line carries the request id for correlation.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}

// RespondWithValidationError handles failures from c.ShouldBindJSON and friends
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErr := ValidationError(validationErrs)
		logger.InfoWithError(ctx, "validation failed", err)
		c.JSON(apiErr.StatusCode, ErrorResponse{
			Error: apiErr.Message,
			Code:  apiErr.Code,
		})
		return
	}

	// JSON syntax or type errors
	logger.InfoWithError(ctx, "request binding failed", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}
