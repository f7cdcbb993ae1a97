package services

import (
	"context"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/shopspring/decimal"
)

// ProductPricingReaderSvc defines read operations on per-product pricing
type ProductPricingReaderSvc interface {
	GetPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error)

	// DisplayPrice loads the product and its parent and runs the price override.
	DisplayPrice(ctx context.Context, productID int64) (*dto.DisplayPriceResponse, error)

	ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error)
}

// ProductPricingWriterSvc defines write operations on per-product pricing
type ProductPricingWriterSvc interface {
	SavePriceSource(ctx context.Context, productID int64, req dto.SavePriceSourceRequest, userID string) (*domain.PriceSource, error)

	// RecordFetchedPrice converts a scraped price and appends it to the product's history.
	RecordFetchedPrice(ctx context.Context, productID int64, originalPrice decimal.Decimal, sourceURL string) (*domain.PriceHistory, error)
}

// ProductPricingSvcFacade combines all product pricing service interfaces
type ProductPricingSvcFacade interface {
	ProductPricingReaderSvc
	ProductPricingWriterSvc
}
