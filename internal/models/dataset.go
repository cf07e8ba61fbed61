package models

import "time"

// Dataset is the immutable snapshot of the workbook loaded at startup
type Dataset struct {
	SourcePath string
	Sheet      string
	Columns    []string
	Lines      []ClaimLine
	LoadedAt   time.Time
}

// Len returns the number of claim lines
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}
