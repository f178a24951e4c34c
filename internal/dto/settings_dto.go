package dto

import (
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest carries a partial settings update. Nil fields are left untouched.
type UpdateSettingsRequest struct {
	AppName         *string `json:"appName,omitempty" binding:"omitempty,min=1,max=60"`
	BackgroundImage *string `json:"backgroundImage,omitempty" binding:"omitempty,max=2048"`
	Language        *string `json:"language,omitempty" binding:"omitempty,oneof=es en"`
}

// SetExchangeRateRequest sets the secondary-per-primary rate. Non-positive values are ignored.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// SettingsResponse defines the structure for API responses containing the shop settings.
type SettingsResponse struct {
	AppName         string          `json:"appName"`
	BackgroundImage string          `json:"backgroundImage"`
	Language        string          `json:"language"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	LastUpdatedAt   *time.Time      `json:"lastUpdatedAt,omitempty"`
	LastUpdatedBy   string          `json:"lastUpdatedBy,omitempty"`
}

// SetExchangeRateResponse reports whether the submitted rate replaced the current one.
type SetExchangeRateResponse struct {
	Applied  bool             `json:"applied"`
	Settings SettingsResponse `json:"settings"`
}

// ExchangeRateChangeResponse is one exchange rate history entry.
type ExchangeRateChangeResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Rate           decimal.Decimal `json:"rate"`
	SetAt          time.Time       `json:"setAt"`
	SetBy          string          `json:"setBy"`
}

// ListExchangeRateHistoryResponse is a page of history entries.
type ListExchangeRateHistoryResponse struct {
	Changes   []ExchangeRateChangeResponse `json:"changes"`
	NextToken string                       `json:"nextToken,omitempty"`
}

// ListParams are the paging query parameters shared by list endpoints.
type ListParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ToSettingsResponse converts domain.ShopSettings to its response DTO.
func ToSettingsResponse(s domain.ShopSettings) SettingsResponse {
	resp := SettingsResponse{
		AppName:         s.AppName,
		BackgroundImage: s.BackgroundImage,
		Language:        s.Language,
		ExchangeRate:    s.ExchangeRate,
		LastUpdatedBy:   s.LastUpdatedBy,
	}
	if !s.LastUpdatedAt.IsZero() {
		t := s.LastUpdatedAt
		resp.LastUpdatedAt = &t
	}
	return resp
}

// ToExchangeRateHistoryResponse converts a page of changes.
func ToExchangeRateHistoryResponse(changes []domain.ExchangeRateChange, nextToken string) ListExchangeRateHistoryResponse {
	resp := ListExchangeRateHistoryResponse{
		Changes:   make([]ExchangeRateChangeResponse, len(changes)),
		NextToken: nextToken,
	}
	for i, c := range changes {
		resp.Changes[i] = ExchangeRateChangeResponse(c)
	}
	return resp
}
