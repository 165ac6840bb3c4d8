package service

import (
	"fmt"
	"strings"
)

// currencySymbols covers the display symbols for common order currencies;
// anything else is formatted with its ISO code as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// formatPrice renders a monetary value as a plain display string, e.g.
// "$1,234.50" or "SAR 25.00". No markup is ever produced.
func formatPrice(currency string, value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	formatted := groupThousands(fmt.Sprintf("%.2f", value))
	if symbol, ok := currencySymbols[currency]; ok {
		formatted = symbol + formatted
	} else if currency != "" {
		formatted = currency + " " + formatted
	}

	if negative {
		return "-" + formatted
	}
	return formatted
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string
func groupThousands(s string) string {
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String()
	if fracPart != "" {
		out += "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}
