package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
)

// SettingsReader defines read operations for the shop settings.
type SettingsReader interface {
	// FindSettings returns the stored settings, or apperrors.ErrNotFound when nothing was saved yet.
	FindSettings(ctx context.Context) (*domain.ShopSettings, error)
}

// SettingsWriter defines write operations for the shop settings.
type SettingsWriter interface {
	// SaveSettings replaces the stored settings. A non-nil change is appended to the
	// exchange rate history in the same transaction.
	SaveSettings(ctx context.Context, settings domain.ShopSettings, change *domain.ExchangeRateChange) error
}

// ExchangeRateHistoryReader lists past exchange rate changes, newest first.
type ExchangeRateHistoryReader interface {
	// ListExchangeRateChanges returns up to limit entries set strictly before the given time, if any.
	ListExchangeRateChanges(ctx context.Context, limit int, before *time.Time) ([]domain.ExchangeRateChange, error)
}

// SettingsRepositoryFacade combines all settings-related repository interfaces.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
	ExchangeRateHistoryReader
}
