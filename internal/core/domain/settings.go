package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopSettings is the process-wide configuration of a shop. It is loaded at startup and
// persisted on change through the settings repository.
type ShopSettings struct {
	AppName         string          `json:"appName"`
	BackgroundImage string          `json:"backgroundImage"`
	Language        string          `json:"language"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	AuditFields
}

// DefaultShopSettings returns the settings used before anything has been saved.
func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		AppName:      "MobilePOS",
		Language:     "es",
		ExchangeRate: decimal.RequireFromString("45.50"),
	}
}

// ExchangeRateChange is one entry of the exchange rate history.
type ExchangeRateChange struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Rate           decimal.Decimal `json:"rate"`
	SetAt          time.Time       `json:"setAt"`
	SetBy          string          `json:"setBy"`
}
