// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no symbol is configured.
const DefaultCurrency = "$"

// FormatMoney formats an amount with a currency symbol, comma grouping and two decimals.
// e.g., 1234.5 -> "$1,234.50", -500 -> "-$500.00"
func FormatMoney(d decimal.Decimal, symbol string) string {
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	grouped := intPart
	if err == nil {
		grouped = FormatNumber(n)
	}

	s := symbol + grouped + "." + frac
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a value already scaled to 0-100.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
