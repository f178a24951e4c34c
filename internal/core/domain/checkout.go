package domain

import "github.com/shopspring/decimal"

// PaymentMethod is the tender method recorded on a sale ticket.
type PaymentMethod string

const (
	PaymentMixed    PaymentMethod = "mixed"
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentMobile   PaymentMethod = "mobile"
)

// IsKnown reports whether m is one of the accepted payment methods.
func (m PaymentMethod) IsKnown() bool {
	switch m {
	case PaymentMixed, PaymentCash, PaymentCard, PaymentTransfer, PaymentMobile:
		return true
	}
	return false
}

// PaymentStatus mirrors the ticket payment states of the backend.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentPartial PaymentStatus = "Partial"
	PaymentOverdue PaymentStatus = "Overdue"
)

// DefaultCustomerName is used when a sale is finalized without a customer.
const DefaultCustomerName = "Cliente General"

// Tender holds the amounts a customer hands over in each currency.
type Tender struct {
	AmountPrimary   decimal.Decimal `json:"amountPrimary"`
	AmountSecondary decimal.Decimal `json:"amountSecondary"`
}

// Reconciliation is the derived pay/change state of a sale. It is never stored.
type Reconciliation struct {
	TotalDuePrimary        decimal.Decimal `json:"totalDuePrimary"`
	TotalDueSecondary      decimal.Decimal `json:"totalDueSecondary"`
	PaidPrimary            decimal.Decimal `json:"paidPrimary"`
	PaidSecondaryInPrimary decimal.Decimal `json:"paidSecondaryInPrimary"`
	TotalPaidPrimary       decimal.Decimal `json:"totalPaidPrimary"`
	RemainingPrimary       decimal.Decimal `json:"remainingPrimary"`
	RemainingSecondary     decimal.Decimal `json:"remainingSecondary"`
	IsComplete             bool            `json:"isComplete"`
	IsChange               bool            `json:"isChange"`
}

// Change returns the change due in both currencies. Both are zero while the sale is incomplete.
func (r Reconciliation) Change() (primary, secondary decimal.Decimal) {
	if !r.IsComplete {
		return decimal.Zero, decimal.Zero
	}
	return r.RemainingPrimary.Abs(), r.RemainingSecondary.Abs()
}

// SaleRecord is the finalized outcome of a checkout, ready to be mapped onto a ticket.
type SaleRecord struct {
	TenderedPrimary   decimal.Decimal `json:"tenderedPrimary"`
	TenderedSecondary decimal.Decimal `json:"tenderedSecondary"`
	Method            PaymentMethod   `json:"method"`
	CustomerName      string          `json:"customerName"`
	IsCredit          bool            `json:"isCredit"`
}

// PaymentStatus is Pending for credit sales and Paid otherwise.
func (s SaleRecord) PaymentStatus() PaymentStatus {
	if s.IsCredit {
		return PaymentPending
	}
	return PaymentPaid
}

// CheckoutState is the lifecycle position of a single checkout session.
type CheckoutState string

const (
	CheckoutIdle          CheckoutState = "idle"
	CheckoutEditing       CheckoutState = "editing"
	CheckoutComplete      CheckoutState = "complete"
	CheckoutPartialCredit CheckoutState = "partial_credit"
	CheckoutConfirmed     CheckoutState = "confirmed"
)

// CheckoutQuote is a reconciliation preview for the tender entered so far.
type CheckoutQuote struct {
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	Tender         Tender          `json:"tender"`
	Reconciliation Reconciliation  `json:"reconciliation"`
	State          CheckoutState   `json:"state"`
	CanConfirm     bool            `json:"canConfirm"`
}

// ConfirmedSale is a finalized sale together with the ticket the backend stored for it.
type ConfirmedSale struct {
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	Sale           SaleRecord      `json:"sale"`
	Reconciliation Reconciliation  `json:"reconciliation"`
	Ticket         Ticket          `json:"ticket"`
}
