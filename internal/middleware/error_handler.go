package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"medication-dashboard/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API errors counter metric
	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of API errors by code, endpoint, and status",
		},
		[]string{"code", "endpoint", "status"},
	)
)

// CustomHTTPErrorHandler is a custom error handler for Echo that formats errors
// as standardized error responses and logs them appropriately
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *errors.ErrorResponse
	var httpStatus int

	var echoErr *echo.HTTPError
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &echoErr) {
		errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
		message := fmt.Sprintf("%v", echoErr.Message)

		errorResponse = errors.NewErrorResponse(
			errorCode,
			traceID,
			errors.WithMessage(message),
		)
		httpStatus = echoErr.Code
	} else if stderrors.As(err, &validationErrs) {
		// Handle validation errors from go-playground/validator
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fmt.Sprintf("%s: %s", fieldErr.Field(), formatValidationError(fieldErr)))
		}
		errorResponse = errors.NewValidationErrorFromList(details, traceID)
		httpStatus = http.StatusBadRequest
	} else {
		errorResponse, _ = errors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	slog.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		slog.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s values", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s values", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "filter_value":
		return "must be non-empty UTF-8 text"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
