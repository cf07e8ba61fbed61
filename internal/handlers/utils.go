package handlers

import (
	"medication-dashboard/internal/dto"

	"github.com/labstack/echo/v4"
)

// selectionParams are the query keys that carry an explicit selection
var selectionParams = []string{"treatments", "providers", "filtered"}

// hasExplicitSelection reports whether the request names a selection, even an
// empty one. Without it the default selection applies.
func hasExplicitSelection(c echo.Context) bool {
	params := c.QueryParams()
	for _, key := range selectionParams {
		if _, ok := params[key]; ok {
			return true
		}
	}
	return false
}

// selectionFromQuery reads repeated treatments/providers keys. Values are not
// split on commas since provider names may contain them.
func selectionFromQuery(c echo.Context) dto.ComparisonRequest {
	params := c.QueryParams()
	return dto.ComparisonRequest{
		Treatments: nonBlank(params["treatments"]),
		Providers:  nonBlank(params["providers"]),
	}
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
