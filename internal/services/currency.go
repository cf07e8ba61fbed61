package services

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const rupiahPrefix = "Rp "

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah rounds to whole rupiah and groups thousands with dots: "Rp 1.234.567"
func FormatRupiah(amount decimal.Decimal) string {
	// Halves round to even: 2.5 -> 2, 3.5 -> 4
	return rupiahPrefix + rupiahPrinter.Sprintf("%d", amount.RoundBank(0).IntPart())
}
