package models

import (
	"github.com/shopspring/decimal"
)

// DashboardState is the explicit state of the comparison view
type DashboardState string

const (
	// StateIdle is shown until the user confirms the current selection
	StateIdle DashboardState = "idle"
	// StateRendered is shown after the confirm action for that selection
	StateRendered DashboardState = "rendered"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-visible info, warning or error message
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
}

// TableRow is a claim line restricted to the five displayed columns
type TableRow struct {
	TreatmentPlace string              `json:"treatment_place"`
	GroupProvider  string              `json:"group_provider"`
	ItemName       string              `json:"item_name"`
	Qty            decimal.NullDecimal `json:"qty"`
	AmountBill     decimal.NullDecimal `json:"amount_bill"`
}

// FilteredView is the subset of dataset lines matching one comparison pair
type FilteredView struct {
	Pair  ComparisonPair
	Lines []ClaimLine
}

// IsEmpty reports whether no line matched the pair
func (v FilteredView) IsEmpty() bool {
	return len(v.Lines) == 0
}

// ComparisonTab is everything rendered for one comparison pair. When Notice is
// set the view was empty and the remaining fields are zero.
type ComparisonTab struct {
	Label          string          `json:"label"`
	Pair           ComparisonPair  `json:"pair"`
	Notice         *Notice         `json:"notice,omitempty"`
	Rows           []TableRow      `json:"rows,omitempty"`
	RecordCount    int             `json:"record_count"`
	TotalAmount    decimal.Decimal `json:"total_amount_bill"`
	FormattedTotal string          `json:"formatted_total_amount_bill,omitempty"`
	WordCloudText  string          `json:"word_cloud_text,omitempty"`
	WordCloudURL   string          `json:"word_cloud_url,omitempty"`
}

// HasData reports whether the tab renders a table
func (t ComparisonTab) HasData() bool {
	return t.Notice == nil
}

// DashboardView is the complete result of one interaction with the dashboard
type DashboardView struct {
	State     DashboardState  `json:"state"`
	Title     string          `json:"title"`
	Options   FilterOptions   `json:"options"`
	Selection FilterSelection `json:"selection"`
	Notices   []Notice        `json:"notices"`
	Tabs      []ComparisonTab `json:"tabs"`
}
