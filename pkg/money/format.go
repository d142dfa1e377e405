// Package money formats dollar amounts and ratios for display.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NotAvailable stands in for NaN and infinite values.
const NotAvailable = "n/a"

var million = decimal.NewFromInt(1_000_000)

// FormatCurrency renders whole US dollars with thousands separators, or
// millions with two decimals once |v| reaches one million.
//
//	FormatCurrency(325000)   // "$325,000"
//	FormatCurrency(1250000)  // "$1.25M"
//	FormatCurrency(-1500.6)  // "-$1,501"
func FormatCurrency(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	d := decimal.NewFromFloat(v)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	if d.GreaterThanOrEqual(million) {
		return sign + "$" + d.Div(million).StringFixed(2) + "M"
	}
	whole := d.Round(0)
	if whole.IsZero() {
		sign = ""
	}
	return sign + "$" + groupThousands(whole.StringFixed(0))
}

// FormatPercent renders v, already in percent, with the given decimals.
func FormatPercent(v float64, decimals int32) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(decimals) + "%"
}

// FormatMultiple renders a ratio such as an equity multiple or DSCR.
func FormatMultiple(v float64) string {
	if !finite(v) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "x"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
