package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as Brazilian reais for contract text and
// display strings: "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	s := amount.StringFixed(2) // "-1234.56"
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDateBR converts an ISO date string (YYYY-MM-DD) to DD/MM/YYYY.
// Inputs that don't look like ISO dates are returned unchanged.
func FormatDateBR(isoDate string) string {
	parts := strings.SplitN(isoDate, "-", 3)
	if len(parts) != 3 || len(parts[0]) != 4 {
		return isoDate
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
