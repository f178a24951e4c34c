package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mobilepos_backend/internal/core/ports/services"
	"github.com/SscSPs/mobilepos_backend/internal/dto"
	"github.com/SscSPs/mobilepos_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var supportedLanguages = map[string]bool{"es": true, "en": true}

type settingsService struct {
	BaseService
	repo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the service owning the shop settings.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{repo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.ShopSettings, error) {
	settings, err := s.repo.FindSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultShopSettings()
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) SetExchangeRate(ctx context.Context, rate decimal.Decimal, userID string) (*domain.ShopSettings, bool, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, false, err
	}
	if !rate.IsPositive() {
		s.LogInfo(ctx, "Ignoring non-positive exchange rate",
			slog.String("rate", rate.String()),
			slog.String("current_rate", current.ExchangeRate.String()))
		return current, false, nil
	}

	now := s.Now()
	updated := *current
	updated.ExchangeRate = rate
	touch(&updated.AuditFields, userID, now)

	change := &domain.ExchangeRateChange{
		ExchangeRateID: uuid.NewString(),
		Rate:           rate,
		SetAt:          now,
		SetBy:          userID,
	}
	if err := s.repo.SaveSettings(ctx, updated, change); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("rate", rate.String()))
		return nil, false, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated",
		slog.String("previous_rate", current.ExchangeRate.String()),
		slog.String("rate", rate.String()))
	return &updated, true, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.ShopSettings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	updated := *current

	if req.AppName != nil {
		name := strings.TrimSpace(*req.AppName)
		if name == "" {
			return nil, apperrors.NewValidationError("app name cannot be blank")
		}
		updated.AppName = name
	}
	if req.BackgroundImage != nil {
		updated.BackgroundImage = strings.TrimSpace(*req.BackgroundImage)
	}
	if req.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*req.Language))
		if !supportedLanguages[lang] {
			return nil, fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, *req.Language)
		}
		updated.Language = lang
	}

	touch(&updated.AuditFields, userID, s.Now())
	if err := s.repo.SaveSettings(ctx, updated, nil); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &updated, nil
}

func (s *settingsService) ListRateHistory(ctx context.Context, limit int, nextToken string) ([]domain.ExchangeRateChange, string, error) {
	limit = pagination.NormalizeLimit(limit)
	before, err := pagination.Cursor(nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	changes, err := s.repo.ListExchangeRateChanges(ctx, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rate history")
		return nil, "", fmt.Errorf("failed to list exchange rate history: %w", err)
	}
	page, next := pagination.Page(changes, limit, func(c domain.ExchangeRateChange) time.Time { return c.SetAt })
	return page, next, nil
}

func touch(a *domain.AuditFields, userID string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
