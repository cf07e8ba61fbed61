package handlers

import (
	"fmt"
	"html/template"
	"io"
	"net/http"

	"medication-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dashboardTemplateName = "dashboard"

// TemplateRenderer implements echo.Renderer over html/template
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the dashboard page
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.New(dashboardTemplateName).Funcs(template.FuncMap{
		"selected":        containsValue,
		"cell":            formatCell,
		"idleInstruction": func() string { return services.IdleInstruction },
		"scriptPath":      func() string { return DashboardScriptPath },
	}).Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// Render implements the echo.Renderer interface
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func containsValue(value string, values []string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// formatCell leaves missing numbers blank
func formatCell(value decimal.NullDecimal) string {
	if !value.Valid {
		return ""
	}
	return value.Decimal.String()
}

// DashboardScript serves the page script
func DashboardScript(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "text/javascript; charset=utf-8", []byte(dashboardScript))
}
