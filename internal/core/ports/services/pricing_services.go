package services

import (
	"context"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves source currency to Toman rates.
type RateResolverSvc interface {
	// ResolveRate always returns a positive rate; remote failures degrade silently.
	ResolveRate(ctx context.Context, currencyCode string, settings domain.RateSettings) decimal.Decimal

	// CacheStatus reports the shared remote snapshot cache and fetch lock.
	CacheStatus() domain.RateCacheStatus
}

// ConversionSvc is the single "amount in currency X to Toman" operation.
type ConversionSvc interface {
	// Convert resolves the rate, applies the markup scope and rounds to whole Toman.
	// A nil override uses the global markup from settings.
	Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, settings domain.RateSettings, override *domain.MarkupRule) decimal.Decimal
}

// PriceFetchSvc scrapes a price from a product page.
type PriceFetchSvc interface {
	// FetchPrice returns the first price found on the page at url.
	FetchPrice(ctx context.Context, url, selector string) (decimal.Decimal, error)
}

// PriceOverrideSvc decides the Toman price shown for catalog entities.
type PriceOverrideSvc interface {
	// ResolveDisplayPrice returns the converted price, or false when the
	// platform's stored price must be left untouched.
	ResolveDisplayPrice(ctx context.Context, entity domain.Entity, parent *domain.Entity, settings domain.RateSettings) (decimal.Decimal, bool)

	// VariationPriceHash returns the inputs that must invalidate cached variation prices.
	VariationPriceHash(ctx context.Context, entity domain.Entity, settings domain.RateSettings) map[string]string
}
