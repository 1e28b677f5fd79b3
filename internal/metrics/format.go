package metrics

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Display helpers shared by all five derivations so rounding and grouping
// rules stay in one place. All output is two decimal places; grouping and
// symbols vary per metric to match the report columns downstream tooling
// expects.

// formatPlain renders two decimals with no grouping and no symbol.
// Used for Price Used For BB Profit and MSRP Difference.
func formatPlain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatCurrency renders a dollar amount with thousands grouping, sign
// preserved after the symbol ($-3.50).
func formatCurrency(d decimal.Decimal) string {
	return "$" + formatGrouped(d)
}

// formatPercent renders a grouped two-decimal value with a trailing %.
func formatPercent(d decimal.Decimal) string {
	return formatGrouped(d) + "%"
}

// formatGrouped renders two decimals with comma thousands separators.
func formatGrouped(d decimal.Decimal) string {
	return groupThousands(d.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of an
// already fixed-point string.
func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		intPart, fracPart = fixed[:dot], fixed[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}
