package pgsql

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxCatalogRepository reads the platform's stored product prices.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.PlatformPrices {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlatformPrices = (*PgxCatalogRepository)(nil)

// RegularPrice returns the stored regular price, or zero when the product has none.
func (r *PgxCatalogRepository) RegularPrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var price decimal.NullDecimal
	err := r.Pool.QueryRow(ctx, `SELECT regular_price FROM catalog_products WHERE product_id = $1;`, productID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read regular price for product %d: %w", productID, err)
	}
	return price.Decimal, nil
}
