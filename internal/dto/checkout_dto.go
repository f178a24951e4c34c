package dto

import (
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/utils/tender"
	"github.com/shopspring/decimal"
)

// CheckoutQuoteRequest is the tender entered so far for a sale.
// ExchangeRate overrides the shop rate when set.
type CheckoutQuoteRequest struct {
	TotalDue          decimal.Decimal  `json:"totalDue" binding:"dgte0"`
	ExchangeRate      *decimal.Decimal `json:"exchangeRate,omitempty" binding:"omitempty,dgt0"`
	TenderedPrimary   RawAmount        `json:"tenderedPrimary"`
	TenderedSecondary RawAmount        `json:"tenderedSecondary"`
	IsCredit          bool             `json:"isCredit"`
	CustomerName      string           `json:"customerName" binding:"max=120"`
}

// TicketItemRequest is one cart line of a confirmed sale.
type TicketItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CheckoutConfirmRequest finalizes a sale and stores its ticket.
type CheckoutConfirmRequest struct {
	CheckoutQuoteRequest
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=mixed cash card transfer mobile"`
	Items         []TicketItemRequest  `json:"items" binding:"required,min=1,dive"`
}

// CheckoutQuoteResponse presents a reconciliation rounded for display.
type CheckoutQuoteResponse struct {
	ExchangeRate           decimal.Decimal      `json:"exchangeRate"`
	TotalDuePrimary        decimal.Decimal      `json:"totalDuePrimary"`
	TotalDueSecondary      decimal.Decimal      `json:"totalDueSecondary"`
	PaidPrimary            decimal.Decimal      `json:"paidPrimary"`
	PaidSecondaryInPrimary decimal.Decimal      `json:"paidSecondaryInPrimary"`
	TotalPaidPrimary       decimal.Decimal      `json:"totalPaidPrimary"`
	RemainingPrimary       decimal.Decimal      `json:"remainingPrimary"`
	RemainingSecondary     decimal.Decimal      `json:"remainingSecondary"`
	ChangePrimary          decimal.Decimal      `json:"changePrimary"`
	ChangeSecondary        decimal.Decimal      `json:"changeSecondary"`
	IsComplete             bool                 `json:"isComplete"`
	IsChange               bool                 `json:"isChange"`
	CanConfirm             bool                 `json:"canConfirm"`
	State                  domain.CheckoutState `json:"state"`
}

// CheckoutConfirmResponse is returned once the ticket has been stored.
type CheckoutConfirmResponse struct {
	TicketID      string                `json:"ticketId"`
	PaymentStatus domain.PaymentStatus  `json:"paymentStatus"`
	Sale          domain.SaleRecord     `json:"sale"`
	Quote         CheckoutQuoteResponse `json:"quote"`
}

// ToTicketItems converts the cart lines to the ticket payload form.
func ToTicketItems(items []TicketItemRequest) []domain.TicketItem {
	out := make([]domain.TicketItem, len(items))
	for i, it := range items {
		out[i] = domain.TicketItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

// ToCheckoutQuoteResponse rounds every amount to two decimals.
func ToCheckoutQuoteResponse(q *domain.CheckoutQuote) CheckoutQuoteResponse {
	r := q.Reconciliation
	changePrimary, changeSecondary := r.Change()
	return CheckoutQuoteResponse{
		ExchangeRate:           q.ExchangeRate,
		TotalDuePrimary:        tender.Round2(r.TotalDuePrimary),
		TotalDueSecondary:      tender.Round2(r.TotalDueSecondary),
		PaidPrimary:            tender.Round2(r.PaidPrimary),
		PaidSecondaryInPrimary: tender.Round2(r.PaidSecondaryInPrimary),
		TotalPaidPrimary:       tender.Round2(r.TotalPaidPrimary),
		RemainingPrimary:       tender.Round2(r.RemainingPrimary),
		RemainingSecondary:     tender.Round2(r.RemainingSecondary),
		ChangePrimary:          tender.Round2(changePrimary),
		ChangeSecondary:        tender.Round2(changeSecondary),
		IsComplete:             r.IsComplete,
		IsChange:               r.IsChange,
		CanConfirm:             q.CanConfirm,
		State:                  q.State,
	}
}

// ToCheckoutConfirmResponse converts a confirmed sale.
func ToCheckoutConfirmResponse(s *domain.ConfirmedSale) CheckoutConfirmResponse {
	quote := &domain.CheckoutQuote{
		ExchangeRate:   s.ExchangeRate,
		Reconciliation: s.Reconciliation,
		State:          domain.CheckoutConfirmed,
		CanConfirm:     false,
	}
	return CheckoutConfirmResponse{
		TicketID:      s.Ticket.ID,
		PaymentStatus: s.Sale.PaymentStatus(),
		Sale:          s.Sale,
		Quote:         ToCheckoutQuoteResponse(quote),
	}
}
