// Package utils provides common formatting helpers for BrickVal output.
package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatMoney formats an amount with thousands separators and a currency
// symbol, using the accounting convention of parenthesized negatives.
// e.g., 1234567.891 → "$1,234,567.89", -2500 → "($2,500.00)"
func FormatMoney(amount float64, symbol string) string {
	negative := amount < 0

	cents := int64(math.Round(math.Abs(amount) * 100))
	intPart := cents / 100
	frac := cents % 100

	formatted := fmt.Sprintf("%s%s.%02d", symbol, formatThousands(intPart), frac)
	if negative && cents > 0 {
		return "(" + formatted + ")"
	}
	return formatted
}

// FormatCompact formats an amount in abbreviated notation for dense tables.
// e.g., 1250000 → "$1.25M", 780000000 → "$780M"
func FormatCompact(amount float64, symbol string) string {
	negative := amount < 0
	amount = math.Abs(amount)

	prefix := symbol
	if negative {
		prefix = "-" + symbol
	}

	switch {
	case amount >= 1e9:
		return fmt.Sprintf("%s%sB", prefix, formatWithDecimals(amount/1e9))
	case amount >= 1e6:
		return fmt.Sprintf("%s%sM", prefix, formatWithDecimals(amount/1e6))
	case amount >= 1e3:
		return fmt.Sprintf("%s%sK", prefix, formatWithDecimals(amount/1e3))
	default:
		return fmt.Sprintf("%s%.2f", prefix, amount)
	}
}

// FormatPercent formats a ratio as a percentage.
// e.g., 0.069 → "6.90%", -0.015 → "-1.50%"
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// FormatMultiple formats a ratio as a multiple, as read on DSCR or GRM lines.
// e.g., 1.4375 → "1.44x"
func FormatMultiple(ratio float64) string {
	return fmt.Sprintf("%.2fx", ratio)
}

// formatThousands formats an integer with separators every three digits.
func formatThousands(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	s := fmt.Sprintf("%d", n)
	result := s[len(s)-3:]
	remaining := s[:len(s)-3]

	// Group remaining digits in threes from the right
	for len(remaining) > 0 {
		if len(remaining) > 3 {
			result = remaining[len(remaining)-3:] + "," + result
			remaining = remaining[:len(remaining)-3]
		} else {
			result = remaining + "," + result
			remaining = ""
		}
	}

	return result
}

// formatWithDecimals formats a number with up to 2 decimal places,
// removing trailing zeros.
func formatWithDecimals(n float64) string {
	s := fmt.Sprintf("%.2f", n)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
