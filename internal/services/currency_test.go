package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	testCases := []struct {
		amount   string
		expected string
	}{
		{"1234567", "Rp 1.234.567"},
		{"120000", "Rp 120.000"},
		{"0", "Rp 0"},
		{"999", "Rp 999"},
		{"1000", "Rp 1.000"},
		{"1234.5", "Rp 1.234"},
		{"1235.5", "Rp 1.236"},
		{"2.5", "Rp 2"},
		{"1234.51", "Rp 1.235"},
		{"-1234567", "Rp -1.234.567"},
		{"1234.49", "Rp 1.234"},
		{"2500000000", "Rp 2.500.000.000"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRupiah(decimal.RequireFromString(tc.amount)))
		})
	}
}
