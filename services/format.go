package services

import (
	"fmt"
	"strings"
)

// FormatTk formats an amount as Bangladeshi taka for display, e.g.
// "Tk 1,234,567" or "Tk 1,234.50". Whole amounts are rendered without a
// decimal part; fractional ones always carry two decimals.
func FormatTk(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	formatted := groupThousands(intPart)
	if decPart != "00" {
		formatted += "." + decPart
	}

	result := "Tk " + formatted
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every three digits
// from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
