package handlers

import (
	"net/http"

	"medication-dashboard/internal/dto"
	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/models"
	"medication-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// APIWordCloudPath is the JSON API route serving word-cloud images
const APIWordCloudPath = "/api/v1/comparisons/wordcloud"

// ComparisonHandler exposes the dashboard as a JSON API
type ComparisonHandler struct {
	filterService     services.FilterServiceInterface
	comparisonService services.ComparisonServiceInterface
	wordCloudService  services.WordCloudServiceInterface
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(
	filterService services.FilterServiceInterface,
	comparisonService services.ComparisonServiceInterface,
	wordCloudService services.WordCloudServiceInterface,
) *ComparisonHandler {
	return &ComparisonHandler{
		filterService:     filterService,
		comparisonService: comparisonService,
		wordCloudService:  wordCloudService,
	}
}

// GetFilters returns the multi-select options and the default selection
// @Router /api/v1/filters [get]
func (h *ComparisonHandler) GetFilters(c echo.Context) error {
	ctx := c.Request().Context()

	options, err := h.filterService.Options(ctx)
	if err != nil {
		return sendServiceError(c, err)
	}
	defaults, err := h.filterService.DefaultSelection(ctx)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.FiltersResponse{
			Options:          options,
			DefaultSelection: defaults,
		},
	})
}

// GetDashboard returns the idle view for the selection in the query, or the
// default selection when the query names none
// @Router /api/v1/dashboard [get]
func (h *ComparisonHandler) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var selection models.FilterSelection
	if hasExplicitSelection(c) {
		req := selectionFromQuery(c)
		if err := c.Validate(req); err != nil {
			return err
		}
		normalized, err := h.filterService.Normalize(ctx, req.Selection())
		if err != nil {
			return sendServiceError(c, err)
		}
		selection = normalized
	} else {
		defaults, err := h.filterService.DefaultSelection(ctx)
		if err != nil {
			return sendServiceError(c, err)
		}
		selection = defaults
	}

	view, err := h.comparisonService.Idle(ctx, selection)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: view})
}

// CreateComparison runs the confirm action for the posted selection
// @Router /api/v1/comparisons [post]
func (h *ComparisonHandler) CreateComparison(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ComparisonRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	selection, err := h.filterService.Normalize(ctx, req.Selection())
	if err != nil {
		return sendServiceError(c, err)
	}

	view, err := h.comparisonService.Compare(ctx, selection)
	if err != nil {
		return sendServiceError(c, err)
	}

	for i := range view.Tabs {
		if view.Tabs[i].WordCloudURL != "" {
			view.Tabs[i].WordCloudURL = services.WordCloudURL(APIWordCloudPath, view.Tabs[i].Pair)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: view,
		Meta: map[string]int{
			"tabs": len(view.Tabs),
		},
	})
}

// GetWordCloud returns the PNG word cloud of one pair
// @Router /api/v1/comparisons/wordcloud [get]
func (h *ComparisonHandler) GetWordCloud(c echo.Context) error {
	return renderWordCloud(c, h.wordCloudService)
}
