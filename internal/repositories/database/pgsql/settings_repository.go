package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/emjayi/price_converter/internal/models"
	"github.com/emjayi/price_converter/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settingsRowID is the id of the only row in plugin_settings.
const settingsRowID = 1

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// FindSettings reads the settings document.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT document, created_at, created_by, last_updated_at, last_updated_by
		FROM plugin_settings
		WHERE id = $1;
	`
	var raw []byte
	var row models.Settings
	err := r.Pool.QueryRow(ctx, query, settingsRowID).Scan(
		&raw,
		&row.CreatedAt,
		&row.CreatedBy,
		&row.LastUpdatedAt,
		&row.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	if err := json.Unmarshal(raw, &row.Document); err != nil {
		return nil, fmt.Errorf("%w: settings document: %v", apperrors.ErrMalformedConfiguration, err)
	}

	settings := mapping.ToDomainSettings(row)
	return &settings, nil
}

// SaveSettings upserts the settings document.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	row := mapping.ToModelSettings(settings)
	doc, err := json.Marshal(row.Document)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	query := `
		INSERT INTO plugin_settings (id, document, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2::jsonb, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		settingsRowID,
		string(doc),
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
