package pgsql

import (
	"context"
	"fmt"

	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/emjayi/price_converter/internal/models"
	"github.com/emjayi/price_converter/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPriceHistoryRepository struct {
	BaseRepository
}

func newPgxPriceHistoryRepository(pool *pgxpool.Pool) portsrepo.PriceHistoryRepository {
	return &PgxPriceHistoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PriceHistoryRepository = (*PgxPriceHistoryRepository)(nil)

// SavePriceHistory appends a fetched price.
func (r *PgxPriceHistoryRepository) SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error {
	m := mapping.ToModelPriceHistory(entry)
	query := `
		INSERT INTO price_history (history_id, product_id, original_price, converted_price, source_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.HistoryID, m.ProductID, m.OriginalPrice, m.ConvertedPrice, m.SourceURL, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save price history for product %d: %w", m.ProductID, err)
	}
	return nil
}

// ListPriceHistory returns the newest entries first.
func (r *PgxPriceHistoryRepository) ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error) {
	query := `
		SELECT history_id, product_id, original_price, converted_price, source_url, created_at
		FROM price_history
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PriceHistory, error) {
		var h models.PriceHistory
		err := row.Scan(&h.HistoryID, &h.ProductID, &h.OriginalPrice, &h.ConvertedPrice, &h.SourceURL, &h.CreatedAt)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan price history: %w", err)
	}
	return mapping.ToDomainPriceHistorySlice(entries), nil
}
