package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/emjayi/price_converter/internal/models"
	"github.com/emjayi/price_converter/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPriceSourceRepository struct {
	BaseRepository
}

func newPgxPriceSourceRepository(pool *pgxpool.Pool) portsrepo.PriceSourceRepositoryFacade {
	return &PgxPriceSourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PriceSourceRepositoryFacade = (*PgxPriceSourceRepository)(nil)

const priceSourceColumns = `product_id, parent_id, base_amount, base_currency, source_url, selector,
		markup_mode, markup_value, created_at, created_by, last_updated_at, last_updated_by`

// FindPriceSource retrieves the record attached to a product or variation.
func (r *PgxPriceSourceRepository) FindPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error) {
	query := `SELECT ` + priceSourceColumns + ` FROM price_sources WHERE product_id = $1;`

	var m models.PriceSource
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.ParentID,
		&m.BaseAmount,
		&m.BaseCurrency,
		&m.SourceURL,
		&m.Selector,
		&m.MarkupMode,
		&m.MarkupValue,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price source for product %d: %w", productID, err)
	}

	source := mapping.ToDomainPriceSource(m)
	return &source, nil
}

// FindEntity loads the catalog row and the price source of a product. It is
// not found only when neither exists.
func (r *PgxPriceSourceRepository) FindEntity(ctx context.Context, productID int64) (*domain.Entity, error) {
	query := `
		SELECT c.product_id, c.parent_id, c.legacy_usd_price,
			s.product_id, s.parent_id, s.base_amount, s.base_currency, s.source_url, s.selector,
			s.markup_mode, s.markup_value
		FROM (SELECT $1::bigint AS product_id) p
		LEFT JOIN catalog_products c ON c.product_id = p.product_id
		LEFT JOIN price_sources s ON s.product_id = p.product_id
		WHERE c.product_id IS NOT NULL OR s.product_id IS NOT NULL;
	`

	var (
		catalogID, catalogParent *int64
		legacy                   decimal.NullDecimal
		sourceID, sourceParent   *int64
		baseAmount               decimal.NullDecimal
		currency, url, selector  *string
		markupMode               *string
		markupValue              decimal.NullDecimal
	)
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&catalogID, &catalogParent, &legacy,
		&sourceID, &sourceParent, &baseAmount, &currency, &url, &selector,
		&markupMode, &markupValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product %d: %w", productID, err)
	}

	var catalog *models.CatalogProduct
	if catalogID != nil {
		catalog = &models.CatalogProduct{ProductID: *catalogID, ParentID: catalogParent, LegacyUSDPrice: legacy}
	}
	var source *models.PriceSource
	if sourceID != nil {
		source = &models.PriceSource{
			ProductID:    *sourceID,
			ParentID:     sourceParent,
			BaseAmount:   baseAmount,
			BaseCurrency: deref(currency),
			SourceURL:    deref(url),
			Selector:     deref(selector),
			MarkupMode:   deref(markupMode),
			MarkupValue:  markupValue.Decimal,
		}
	}

	entity := mapping.ToDomainEntity(productID, catalog, source)
	return &entity, nil
}

// SavePriceSource inserts or updates the record for source.ProductID.
func (r *PgxPriceSourceRepository) SavePriceSource(ctx context.Context, source domain.PriceSource, parentID int64) error {
	m := mapping.ToModelPriceSource(source, parentID)

	query := `
		INSERT INTO price_sources (` + priceSourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (product_id) DO UPDATE SET
			parent_id = EXCLUDED.parent_id,
			base_amount = EXCLUDED.base_amount,
			base_currency = EXCLUDED.base_currency,
			source_url = EXCLUDED.source_url,
			selector = EXCLUDED.selector,
			markup_mode = EXCLUDED.markup_mode,
			markup_value = EXCLUDED.markup_value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.ParentID,
		m.BaseAmount,
		m.BaseCurrency,
		m.SourceURL,
		m.Selector,
		m.MarkupMode,
		m.MarkupValue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save price source for product %d: %w", m.ProductID, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
