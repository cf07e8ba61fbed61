package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/repositories"
	"medication-dashboard/internal/services"
	"medication-dashboard/internal/wordcloud"

	"github.com/labstack/echo/v4"
)

// Error responses go through SendError for client and domain errors and
// SendSystemError for anything that must not leak internal details.
// Service errors are translated by sendServiceError.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// sendServiceError maps errors returned by the dashboard services to error codes
func sendServiceError(c echo.Context, err error) error {
	code, details, ok := classifyServiceError(err)
	if !ok {
		return SendSystemError(c, err)
	}
	if len(details) > 0 {
		return SendError(c, code, errors.WithDetails(details...))
	}
	return SendError(c, code)
}

func classifyServiceError(err error) (errors.ErrorCode, []string, bool) {
	var unknown *services.UnknownFilterValueError
	switch {
	case stderrors.As(err, &unknown):
		return errors.FilterUnknownValue, []string{fmt.Sprintf("%s: %q", unknown.Dimension, unknown.Value)}, true
	case stderrors.Is(err, repositories.ErrDatasetNotLoaded):
		return errors.DatasetNotLoaded, nil, true
	case stderrors.Is(err, wordcloud.ErrNoWords):
		return errors.WordCloudNoWords, nil, true
	}
	return "", nil, false
}
