package models

// FilterOptions holds the distinct non-missing values offered by each multi-select,
// in the order they first appear in the dataset
type FilterOptions struct {
	TreatmentPlaces []string `json:"treatment_places"`
	GroupProviders  []string `json:"group_providers"`
}

// FilterSelection is the user's choice of treatment places and group providers
type FilterSelection struct {
	Treatments []string `json:"treatments"`
	Providers  []string `json:"providers"`
}

// IsEmpty reports whether neither dimension has a selected value
func (s FilterSelection) IsEmpty() bool {
	return len(s.Treatments) == 0 && len(s.Providers) == 0
}

// ComparisonPair is one (treatment, provider) combination of the cross product
type ComparisonPair struct {
	Treatment string `json:"treatment"`
	Provider  string `json:"provider"`
}

// Label is the tab caption "<treatment> - <provider>"
func (p ComparisonPair) Label() string {
	return p.Treatment + " - " + p.Provider
}

// Pairs expands the selection into its cross product, treatment-major and
// provider-minor. An empty dimension yields no pairs.
func (s FilterSelection) Pairs() []ComparisonPair {
	pairs := make([]ComparisonPair, 0, len(s.Treatments)*len(s.Providers))
	for _, treatment := range s.Treatments {
		for _, provider := range s.Providers {
			pairs = append(pairs, ComparisonPair{Treatment: treatment, Provider: provider})
		}
	}
	return pairs
}
