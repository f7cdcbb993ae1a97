package services

import (
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, remote RemoteRateSource, fetcher PageFetcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The rate cache and fetch lock are process-wide: every request shares them.
	rateResolver := NewRateResolver(
		remote,
		NewRateCache(cfg.RateCacheTTL),
		NewFetchLock(cfg.RateFetchLockTTL),
		WithFetchTimeout(cfg.RateFetchTimeout),
	)
	container.RateResolver = rateResolver
	container.Settings = NewSettingsService(repos.SettingsRepo, cfg.StoreCurrency)
	container.Conversion = NewConversionService(rateResolver)
	container.PriceFetch = NewPriceFetchService(fetcher, cfg.PageFetchTimeout)
	container.PriceOverride = NewPriceOverrideService(container.Conversion, rateResolver, repos.PlatformPrices)
	container.ProductPricing = NewProductPricingService(
		repos.PriceSourceRepo,
		repos.PriceHistoryRepo,
		container.Settings,
		container.PriceOverride,
		container.Conversion,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateResolverSvc         = (*RateResolver)(nil)
	_ portssvc.ConversionSvc           = (*ConversionService)(nil)
	_ portssvc.PriceFetchSvc           = (*PriceFetchService)(nil)
	_ portssvc.PriceOverrideSvc        = (*PriceOverrideService)(nil)
	_ portssvc.SettingsSvcFacade       = (*SettingsService)(nil)
	_ portssvc.ProductPricingSvcFacade = (*ProductPricingService)(nil)
)
