package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidDate        = "INVALID_DATE"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidAudience    = "INVALID_AUDIENCE"
	CodeNotFound           = "NOT_FOUND"
	CodeCustomerNotFound   = "CUSTOMER_NOT_FOUND"
	CodeBusinessNotFound   = "BUSINESS_NOT_FOUND"
	CodeRewardNotFound     = "REWARD_NOT_FOUND"
	CodeCampaignNotFound   = "CAMPAIGN_NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeRewardIDConflict   = "REWARD_ID_CONFLICT"
	CodeRewardInactive     = "REWARD_INACTIVE"
	CodeInsufficientStamps = "INSUFFICIENT_BALANCE"
	CodeRedemptionCap      = "REDEMPTION_LIMIT_REACHED"
	CodeInvalidState       = "INVALID_STATE"
	CodeDrainUnsupported   = "DRAIN_UNSUPPORTED"
	CodeUnavailable        = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// APIError is an error that knows how it is presented to clients.
// Err holds the underlying cause and is never serialized.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound returns a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// BadRequest returns a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized returns a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden returns a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// Conflict returns a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable returns a 503 error. The cause is kept for logging only.
func ServiceUnavailable(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       CodeUnavailable,
		Message:    "The service is temporarily unavailable. Please retry.",
		Err:        err,
	}
}

// InternalError returns a sanitized 500 error that never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
