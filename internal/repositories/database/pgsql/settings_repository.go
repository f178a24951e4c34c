package pgsql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/mobilepos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/mobilepos_backend/internal/models"
	"github.com/SscSPs/mobilepos_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository stores the shop settings and exchange rate history in PostgreSQL.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: db}}
}

func (r *PgxSettingsRepository) FindSettings(ctx context.Context) (*domain.ShopSettings, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT settings_id, app_name, background_image, language, exchange_rate,
			created_at, created_by, last_updated_at, last_updated_by
		FROM shop_settings
		WHERE settings_id = $1`, models.SettingsRowID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query settings", err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.ShopSettings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("settings not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan settings", err)
	}

	settings := mapping.ToDomainShopSettings(row)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.ShopSettings, change *domain.ExchangeRateChange) error {
	m := mapping.ToModelShopSettings(settings)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO shop_settings (
			settings_id, app_name, background_image, language, exchange_rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (settings_id) DO UPDATE SET
			app_name = EXCLUDED.app_name,
			background_image = EXCLUDED.background_image,
			language = EXCLUDED.language,
			exchange_rate = EXCLUDED.exchange_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		m.SettingsID, m.AppName, m.BackgroundImage, m.Language, m.ExchangeRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save settings", err)
	}

	if change != nil {
		c := mapping.ToModelExchangeRateChange(*change)
		_, err = tx.Exec(ctx, `
			INSERT INTO exchange_rate_history (exchange_rate_id, rate, set_at, set_by)
			VALUES ($1, $2, $3, $4)`,
			c.ExchangeRateID, c.Rate, c.SetAt, c.SetBy,
		)
		if err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to save exchange rate change", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSettingsRepository) ListExchangeRateChanges(ctx context.Context, limit int, before *time.Time) ([]domain.ExchangeRateChange, error) {
	query := `
		SELECT exchange_rate_id, rate, set_at, set_by
		FROM exchange_rate_history`
	args := []any{}
	if before != nil {
		query += ` WHERE set_at < $1`
		args = append(args, *before)
	}
	query += ` ORDER BY set_at DESC, exchange_rate_id DESC LIMIT ` + placeholder(len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rate changes", err)
	}
	changes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExchangeRateChange])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rate changes", err)
	}
	return mapping.ToDomainExchangeRateChanges(changes), nil
}
