package utils

import "strings"

// NormalizeDecimalComma turns a lone comma into a decimal point when no dot is present,
// so "12,5" reads as 12.5. Anything else is returned trimmed but unchanged.
func NormalizeDecimalComma(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		return strings.Replace(s, ",", ".", 1)
	}
	return s
}
