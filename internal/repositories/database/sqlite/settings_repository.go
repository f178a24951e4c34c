package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/models"
	"github.com/SscSPs/mobilepos_backend/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

// SettingsRepository stores the shop settings and exchange rate history in SQLite.
type SettingsRepository struct {
	db *sqlx.DB
}

func newSettingsRepository(db *sqlx.DB) portsrepo.SettingsRepositoryFacade {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) FindSettings(ctx context.Context) (*domain.ShopSettings, error) {
	var row models.ShopSettings
	err := r.db.GetContext(ctx, &row, `
		SELECT settings_id, app_name, background_image, language, exchange_rate,
			created_at, created_by, last_updated_at, last_updated_by
		FROM shop_settings
		WHERE settings_id = ?`, models.SettingsRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("settings not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find settings", err)
	}
	settings := mapping.ToDomainShopSettings(row)
	return &settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.ShopSettings, change *domain.ExchangeRateChange) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO shop_settings (
			settings_id, app_name, background_image, language, exchange_rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (
			:settings_id, :app_name, :background_image, :language, :exchange_rate,
			:created_at, :created_by, :last_updated_at, :last_updated_by
		)
		ON CONFLICT (settings_id) DO UPDATE SET
			app_name = excluded.app_name,
			background_image = excluded.background_image,
			language = excluded.language,
			exchange_rate = excluded.exchange_rate,
			last_updated_at = excluded.last_updated_at,
			last_updated_by = excluded.last_updated_by`,
		mapping.ToModelShopSettings(settings))
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save settings", err)
	}

	if change != nil {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO exchange_rate_history (exchange_rate_id, rate, set_at, set_by)
			VALUES (:exchange_rate_id, :rate, :set_at, :set_by)`,
			mapping.ToModelExchangeRateChange(*change))
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to save exchange rate change", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}

func (r *SettingsRepository) ListExchangeRateChanges(ctx context.Context, limit int, before *time.Time) ([]domain.ExchangeRateChange, error) {
	query := `SELECT exchange_rate_id, rate, set_at, set_by FROM exchange_rate_history`
	args := []any{}
	if before != nil {
		query += ` WHERE set_at < ?`
		args = append(args, before.UTC())
	}
	query += ` ORDER BY set_at DESC, exchange_rate_id DESC LIMIT ?`
	args = append(args, limit)

	var rows []models.ExchangeRateChange
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rate changes", err)
	}
	return mapping.ToDomainExchangeRateChanges(rows), nil
}
