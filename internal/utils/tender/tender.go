// Package tender computes the pay/change state of a dual-currency sale.
package tender

import (
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CompletionTolerance is the remaining primary amount still treated as fully paid.
// Secondary tender divided by a rate rarely terminates, so an exact zero check would
// leave sales paid to the cent stuck at a sub-cent residue.
var CompletionTolerance = decimal.New(1, -2)

// Convert returns amountPrimary expressed in the secondary currency. No rounding is applied.
func Convert(amountPrimary, rate decimal.Decimal) decimal.Decimal {
	return amountPrimary.Mul(rate)
}

// Reconcile computes the balance of a sale from the two tendered amounts.
func Reconcile(totalDue, rate, tenderedPrimary, tenderedSecondary decimal.Decimal) (domain.Reconciliation, error) {
	if !rate.IsPositive() {
		return domain.Reconciliation{}, apperrors.ErrDivisionByZero
	}

	paidSecondaryInPrimary := tenderedSecondary.Div(rate)
	totalPaid := tenderedPrimary.Add(paidSecondaryInPrimary)
	remaining := totalDue.Sub(totalPaid)
	complete := remaining.LessThanOrEqual(CompletionTolerance)

	return domain.Reconciliation{
		TotalDuePrimary:        totalDue,
		TotalDueSecondary:      Convert(totalDue, rate),
		PaidPrimary:            tenderedPrimary,
		PaidSecondaryInPrimary: paidSecondaryInPrimary,
		TotalPaidPrimary:       totalPaid,
		RemainingPrimary:       remaining,
		RemainingSecondary:     Convert(remaining, rate),
		IsComplete:             complete,
		IsChange:               complete && remaining.IsNegative(),
	}, nil
}

// CanConfirm is the sole gate for finalizing a sale: fully paid, or a credit sale with a named customer.
func CanConfirm(result domain.Reconciliation, isCredit bool, customerName string) bool {
	if result.IsComplete {
		return true
	}
	return isCredit && strings.TrimSpace(customerName) != ""
}

// Finalize builds the sale record handed to ticket creation.
func Finalize(t domain.Tender, result domain.Reconciliation, method domain.PaymentMethod, isCredit bool, customerName string) domain.SaleRecord {
	name := strings.TrimSpace(customerName)
	if name == "" {
		name = domain.DefaultCustomerName
	}
	if method == "" {
		method = domain.PaymentMixed
	}
	return domain.SaleRecord{
		TenderedPrimary:   t.AmountPrimary,
		TenderedSecondary: t.AmountSecondary,
		Method:            method,
		CustomerName:      name,
		IsCredit:          isCredit && !result.IsComplete,
	}
}

// ParseAmount reads a tender field as typed by the cashier. A lone comma is the decimal
// separator. Empty, malformed and negative input all count as zero so that editing never fails.
func ParseAmount(raw string) decimal.Decimal {
	raw = utils.NormalizeDecimalComma(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Round2 rounds for display. Only presentation code should call it.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
