package repositories

import (
	"context"

	"github.com/emjayi/price_converter/internal/core/domain"
)

// PriceSourceReader defines read operations for per-product price sources.
type PriceSourceReader interface {
	// FindEntity loads a product or variation with its price source.
	// Returns apperrors.ErrNotFound for unknown products.
	FindEntity(ctx context.Context, productID int64) (*domain.Entity, error)

	// FindPriceSource returns the record attached to productID.
	FindPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error)
}

// PriceSourceWriter defines write operations for per-product price sources.
type PriceSourceWriter interface {
	// SavePriceSource inserts or updates the record for source.ProductID.
	SavePriceSource(ctx context.Context, source domain.PriceSource, parentID int64) error
}

// PriceSourceRepositoryFacade combines all price source repository interfaces
type PriceSourceRepositoryFacade interface {
	PriceSourceReader
	PriceSourceWriter
}

// PriceHistoryRepository stores fetched prices.
type PriceHistoryRepository interface {
	SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error
	ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error)
}
