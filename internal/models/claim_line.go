package models

import (
	"github.com/shopspring/decimal"
)

// Source column headers the dashboard depends on
const (
	ColumnTreatmentPlace = "TreatmentPlace"
	ColumnGroupProvider  = "GroupProvider"
	ColumnItemName       = "Nama Item Garda Medika"
	ColumnQty            = "Qty"
	ColumnAmountBill     = "Amount Bill"
)

// RequiredColumns lists the headers a workbook must carry, in display order
var RequiredColumns = []string{
	ColumnTreatmentPlace,
	ColumnGroupProvider,
	ColumnItemName,
	ColumnQty,
	ColumnAmountBill,
}

// ClaimLine is one medical claim line item read from the workbook.
// Empty strings and invalid decimals mean the source cell was missing.
type ClaimLine struct {
	Row            int                 `gorm:"column:ordinal;primaryKey;autoIncrement:false" json:"row"`
	TreatmentPlace string              `gorm:"type:text;index" json:"treatment_place"`
	GroupProvider  string              `gorm:"type:text;index" json:"group_provider"`
	ItemName       string              `gorm:"type:text" json:"item_name"`
	Qty            decimal.NullDecimal `gorm:"type:text" json:"qty"`
	AmountBill     decimal.NullDecimal `gorm:"type:text" json:"amount_bill"`
}

func (ClaimLine) TableName() string {
	return "claim_lines"
}

// Matches reports whether the line belongs to the pair. An empty value on
// either side applies no filter for that dimension.
func (l *ClaimLine) Matches(treatment, provider string) bool {
	if treatment != "" && l.TreatmentPlace != treatment {
		return false
	}
	if provider != "" && l.GroupProvider != provider {
		return false
	}
	return true
}
