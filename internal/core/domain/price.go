package domain

import (
	"strconv"
	"strings"
)

// ParsePriceAmount extracts a numeric amount from a formatted price string
// such as "$1,234,567 MXN" or "1.234.567,89".
//
// Locale heuristic, kept as the source system behaves: when the string
// contains both "," and ".", it is treated as European grouping (dots
// stripped, comma becomes the decimal point); otherwise commas are stripped
// as thousands separators. An input like "1,234" therefore parses as 1234.
// Unparseable input yields 0.
func ParsePriceAmount(display string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, display)

	if cleaned == "" {
		return 0
	}

	if strings.Contains(cleaned, ",") && strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}
