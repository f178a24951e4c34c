package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsRowID is the key of the single shop_settings row.
const SettingsRowID = 1

// ShopSettings is the stored form of the shop settings.
type ShopSettings struct {
	SettingsID      int             `db:"settings_id"`
	AppName         string          `db:"app_name"`
	BackgroundImage string          `db:"background_image"`
	Language        string          `db:"language"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate"`
	AuditFields
}

// ExchangeRateChange is one row of exchange_rate_history.
type ExchangeRateChange struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	Rate           decimal.Decimal `db:"rate"`
	SetAt          time.Time       `db:"set_at"`
	SetBy          string          `db:"set_by"`
}
