package mapping

import (
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/models"
)

// ToModelShopSettings converts domain settings to the single stored row.
func ToModelShopSettings(d domain.ShopSettings) models.ShopSettings {
	return models.ShopSettings{
		SettingsID:      models.SettingsRowID,
		AppName:         d.AppName,
		BackgroundImage: d.BackgroundImage,
		Language:        d.Language,
		ExchangeRate:    d.ExchangeRate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShopSettings converts the stored row to domain settings.
func ToDomainShopSettings(m models.ShopSettings) domain.ShopSettings {
	return domain.ShopSettings{
		AppName:         m.AppName,
		BackgroundImage: m.BackgroundImage,
		Language:        m.Language,
		ExchangeRate:    m.ExchangeRate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExchangeRateChange converts a domain history entry to its row.
func ToModelExchangeRateChange(d domain.ExchangeRateChange) models.ExchangeRateChange {
	return models.ExchangeRateChange{
		ExchangeRateID: d.ExchangeRateID,
		Rate:           d.Rate,
		SetAt:          d.SetAt.UTC(),
		SetBy:          d.SetBy,
	}
}

// ToDomainExchangeRateChanges converts history rows, keeping their order.
func ToDomainExchangeRateChanges(rows []models.ExchangeRateChange) []domain.ExchangeRateChange {
	out := make([]domain.ExchangeRateChange, len(rows))
	for i, m := range rows {
		out[i] = domain.ExchangeRateChange{
			ExchangeRateID: m.ExchangeRateID,
			Rate:           m.Rate,
			SetAt:          m.SetAt.UTC(),
			SetBy:          m.SetBy,
		}
	}
	return out
}
