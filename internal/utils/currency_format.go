package utils

import (
	"github.com/shopspring/decimal"
)

// FormatPrimary renders a primary (USD) amount for display, e.g. "$12.35".
func FormatPrimary(amount decimal.Decimal) string {
	return "$" + FormatWithPrecision(amount, 2)
}

// FormatSecondary renders a secondary (VES) amount for display, e.g. "Bs 1234.50".
func FormatSecondary(amount decimal.Decimal) string {
	return "Bs " + FormatWithPrecision(amount, 2)
}

// FormatWithPrecision formats an amount with the given number of decimal places.
// Example: 12.3456 with precision 2 returns "12.35", 12 returns "12.00".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
