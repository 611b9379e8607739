package services

import (
	"strconv"
	"strings"
)

// ParseQuantity parses a raw quantity input. Anything that is not a whole
// number coerces to 0 rather than erroring; negative values are accepted as
// typed (the UI's min="0" is a presentation hint only).
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ParsePrice parses a raw price input, coercing anything non-numeric
// (including blank form fields) to 0.
func ParsePrice(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
