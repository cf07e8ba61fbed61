package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"medication-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Total number of panics recovered while serving requests",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a panic in any later handler into a SYSTEM_001 response.
// The stack is logged, never sent to the client.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				panicsTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					return
				}
				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
					err = sendErr
				}
			}()

			return next(c)
		}
	}
}
