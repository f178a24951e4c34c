package services

import (
	"context"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// SettingsReaderSvc defines read operations for the shop settings.
type SettingsReaderSvc interface {
	// GetSettings returns the stored settings, or the defaults when none were saved.
	GetSettings(ctx context.Context) (*domain.ShopSettings, error)

	// ListRateHistory returns a page of exchange rate changes, newest first, and the token of the next page.
	ListRateHistory(ctx context.Context, limit int, nextToken string) ([]domain.ExchangeRateChange, string, error)
}

// SettingsWriterSvc defines write operations for the shop settings.
type SettingsWriterSvc interface {
	// SetExchangeRate stores rate when it is positive. The bool reports whether it was applied.
	SetExchangeRate(ctx context.Context, rate decimal.Decimal, userID string) (*domain.ShopSettings, bool, error)

	// UpdateSettings applies a partial update of the non-rate settings.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.ShopSettings, error)
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
