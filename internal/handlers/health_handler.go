package handlers

import (
	"net/http"
	"time"

	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	claimRepo repositories.ClaimRepositoryInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(claimRepo repositories.ClaimRepositoryInterface) *HealthCheckHandler {
	return &HealthCheckHandler{claimRepo: claimRepo}
}

// HealthCheck reports whether the dataset is loaded and its store answers
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.claimRepo.Ping(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Dataset store unavailable"))
	}

	rows, err := h.claimRepo.Count(ctx)
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Dataset store unavailable"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"rows":   rows,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
