package domain

import "github.com/shopspring/decimal"

// TicketItem is one cart line sent to the ticket creation endpoint.
type TicketItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// TicketRequest is the ticket creation payload of the backend.
type TicketRequest struct {
	CustomerName  string          `json:"customer_name"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Items         []TicketItem    `json:"items"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate"`
	AmountUSD     decimal.Decimal `json:"amount_usd"`
	AmountVES     decimal.Decimal `json:"amount_ves"`
}

// NewTicketRequest maps a finalized sale onto the ticket payload.
func NewTicketRequest(sale SaleRecord, items []TicketItem, rate decimal.Decimal) TicketRequest {
	return TicketRequest{
		CustomerName:  sale.CustomerName,
		PaymentMethod: sale.Method,
		PaymentStatus: sale.PaymentStatus(),
		Items:         items,
		ExchangeRate:  rate,
		AmountUSD:     sale.TenderedPrimary,
		AmountVES:     sale.TenderedSecondary,
	}
}

// Ticket is the persisted sale as returned by the backend. Date is kept as sent, the
// backend emits timestamps without a zone.
type Ticket struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	PaymentStatus string          `json:"payment_status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate"`
	AmountUSD     decimal.Decimal `json:"amount_usd"`
	AmountVES     decimal.Decimal `json:"amount_ves"`
}
