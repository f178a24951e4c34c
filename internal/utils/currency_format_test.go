package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmounts(t *testing.T) {
	assert.Equal(t, "$12.35", FormatPrimary(decimal.RequireFromString("12.3456")))
	assert.Equal(t, "$0.00", FormatPrimary(decimal.Zero))
	assert.Equal(t, "Bs 1000.00", FormatSecondary(decimal.NewFromInt(1000)))
	assert.Equal(t, "1.5", FormatWithPrecision(decimal.RequireFromString("1.45"), 1))
}
