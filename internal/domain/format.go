package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NotAvailable is the sentinel rendered for values that cannot be formatted.
const NotAvailable = "N/A"

// Magnitude cutoffs for market cap formatting.
const (
	trillion = 1_000_000_000_000
	billion  = 1_000_000_000
	million  = 1_000_000
)

// FormatPrice renders a price-like value as "$" plus a thousands-grouped
// amount with exactly two decimals. Absent and zero values both render as
// N/A: zero is treated as "no data" on purpose, mirroring the upstream
// feed where a zero price only ever means the field was not populated.
func FormatPrice(value *float64) string {
	if value == nil || *value == 0 {
		return NotAvailable
	}

	return "$" + groupThousands(*value, 2)
}

// FormatChange renders the absolute and percentage change between the
// current price and the previous close, e.g. "+5.00 (+5.00%)".
// The sign is "+" for zero-or-positive change and empty for negative;
// a negative change carries its minus sign from the number itself.
// If either price is missing the sentinel N/A is returned.
func FormatChange(current, previous *float64) string {
	if current == nil || previous == nil {
		return NotAvailable
	}

	change := *current - *previous
	changePct := change / *previous * 100

	sign := ""
	if change >= 0 {
		sign = "+"
	}

	return fmt.Sprintf("%s%.2f (%s%.2f%%)", sign, change, sign, changePct)
}

// FormatMarketCap renders a market capitalization with a magnitude suffix:
// trillions as $x.xxT, billions as $x.xxB, millions as $x.xxM, and smaller
// values as whole thousands-grouped dollars. Absent input yields N/A.
func FormatMarketCap(value *float64) string {
	if value == nil {
		return NotAvailable
	}

	v := *value
	switch {
	case v >= trillion:
		return fmt.Sprintf("$%.2fT", v/trillion)
	case v >= billion:
		return fmt.Sprintf("$%.2fB", v/billion)
	case v >= million:
		return fmt.Sprintf("$%.2fM", v/million)
	default:
		return "$" + groupThousands(v, 0)
	}
}

// groupThousands formats v with the given number of decimals and commas
// between each group of three integer digits.
func groupThousands(v float64, decimals int) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}

	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}

	b.WriteString(fracPart)

	return b.String()
}
