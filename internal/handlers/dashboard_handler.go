package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"medication-dashboard/internal/dto"
	"medication-dashboard/internal/errors"
	"medication-dashboard/internal/models"
	"medication-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the HTML dashboard
type DashboardHandler struct {
	filterService     services.FilterServiceInterface
	comparisonService services.ComparisonServiceInterface
	wordCloudService  services.WordCloudServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	filterService services.FilterServiceInterface,
	comparisonService services.ComparisonServiceInterface,
	wordCloudService services.WordCloudServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		filterService:     filterService,
		comparisonService: comparisonService,
		wordCloudService:  wordCloudService,
	}
}

// Index renders the idle dashboard. Any change of filter lands here, so a
// previously rendered comparison is never shown for a different selection.
func (h *DashboardHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	var selection models.FilterSelection
	if hasExplicitSelection(c) {
		req := selectionFromQuery(c)
		if err := c.Validate(req); err != nil {
			return err
		}
		normalized, err := h.filterService.Normalize(ctx, req.Selection())
		if err != nil {
			return h.renderError(c, err)
		}
		selection = normalized
	} else {
		defaults, err := h.filterService.DefaultSelection(ctx)
		if err != nil {
			return h.renderError(c, err)
		}
		selection = defaults
	}

	view, err := h.comparisonService.Idle(ctx, selection)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render(http.StatusOK, dashboardTemplateName, view)
}

// Compare handles the confirm action and renders one tab per pair
func (h *DashboardHandler) Compare(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ComparisonRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid form data"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	selection, err := h.filterService.Normalize(ctx, req.Selection())
	if err != nil {
		return h.renderError(c, err)
	}

	view, err := h.comparisonService.Compare(ctx, selection)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.Render(http.StatusOK, dashboardTemplateName, view)
}

// WordCloud serves the PNG image of one tab
func (h *DashboardHandler) WordCloud(c echo.Context) error {
	return renderWordCloud(c, h.wordCloudService)
}

// renderError shows domain errors inside the page with the matching status.
// Unknown filter values fall back to the idle view of the default selection.
func (h *DashboardHandler) renderError(c echo.Context, err error) error {
	code, _, ok := classifyServiceError(err)
	if !ok {
		return SendSystemError(c, err)
	}

	ctx := c.Request().Context()
	view := &models.DashboardView{
		State:   models.StateIdle,
		Title:   services.DashboardTitle,
		Notices: []models.Notice{},
		Tabs:    []models.ComparisonTab{},
	}

	var unknown *services.UnknownFilterValueError
	if stderrors.As(err, &unknown) {
		if defaults, derr := h.filterService.DefaultSelection(ctx); derr == nil {
			if idle, ierr := h.comparisonService.Idle(ctx, defaults); ierr == nil {
				view = idle
			}
		}
	}

	view.Notices = append([]models.Notice{{
		Level:   models.NoticeError,
		Code:    string(code),
		Message: errors.GetErrorMessage(code),
	}}, view.Notices...)

	slog.WarnContext(ctx, "dashboard request rejected",
		"trace_id", getTraceID(c),
		"error_code", string(code),
		"error", err.Error(),
	)

	status := errors.NewErrorResponse(code, getTraceID(c)).GetHTTPStatus()
	return c.Render(status, dashboardTemplateName, view)
}

// renderWordCloud is shared by the page image and the API endpoint
func renderWordCloud(c echo.Context, svc services.WordCloudServiceInterface) error {
	var req dto.WordCloudRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	img, err := svc.RenderPNG(c.Request().Context(), req.Pair())
	if err != nil {
		if _, _, known := classifyServiceError(err); known {
			return sendServiceError(c, err)
		}
		slog.ErrorContext(c.Request().Context(), "word cloud rendering failed",
			"trace_id", getTraceID(c),
			"treatment", req.Treatment,
			"provider", req.Provider,
			"error", err.Error(),
		)
		return SendError(c, errors.WordCloudRenderFailed)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/png", img)
}
