package dto

import "medication-dashboard/internal/models"

// ComparisonRequest is the confirm action: the values picked in both multi-selects
type ComparisonRequest struct {
	Treatments []string `json:"treatments" form:"treatments" query:"treatments" validate:"max=500,dive,omitempty,filter_value"`
	Providers  []string `json:"providers" form:"providers" query:"providers" validate:"max=500,dive,omitempty,filter_value"`
}

// Selection converts the request to a filter selection
func (r ComparisonRequest) Selection() models.FilterSelection {
	return models.FilterSelection{
		Treatments: nonNil(r.Treatments),
		Providers:  nonNil(r.Providers),
	}
}

// WordCloudRequest identifies the pair whose item names are drawn
type WordCloudRequest struct {
	Treatment string `json:"treatment" query:"treatment" validate:"required,filter_value"`
	Provider  string `json:"provider" query:"provider" validate:"required,filter_value"`
}

// Pair converts the request to a comparison pair
func (r WordCloudRequest) Pair() models.ComparisonPair {
	return models.ComparisonPair{Treatment: r.Treatment, Provider: r.Provider}
}

// FiltersResponse lists the multi-select options and their preselected values
type FiltersResponse struct {
	Options          models.FilterOptions   `json:"options"`
	DefaultSelection models.FilterSelection `json:"default_selection"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
