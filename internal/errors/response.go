package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationErrorFromList creates a VALIDATION_001 response listing each failed field
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is returned unchanged for
// server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, FilterUnknownValue:
		return http.StatusBadRequest

	case WordCloudNoWords, SystemNotFound:
		return http.StatusNotFound

	// Selections that leave nothing to render
	case FilterEmptySelection, FilterEmptyCrossProduct, FilterEmptyView:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable, DatasetNotLoaded:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
