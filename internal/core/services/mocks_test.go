package services_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateResolverSvc ---

type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) ResolveRate(ctx context.Context, currencyCode string, settings domain.RateSettings) decimal.Decimal {
	args := m.Called(ctx, currencyCode, settings)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockRateResolver) CacheStatus() domain.RateCacheStatus {
	args := m.Called()
	return args.Get(0).(domain.RateCacheStatus)
}

// --- Mock ConversionSvc ---

type MockConversion struct {
	mock.Mock
}

func (m *MockConversion) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, settings domain.RateSettings, override *domain.MarkupRule) decimal.Decimal {
	args := m.Called(ctx, amount, currencyCode, settings, override)
	return args.Get(0).(decimal.Decimal)
}

// --- Mock PriceOverrideSvc ---

type MockPriceOverride struct {
	mock.Mock
}

func (m *MockPriceOverride) ResolveDisplayPrice(ctx context.Context, entity domain.Entity, parent *domain.Entity, settings domain.RateSettings) (decimal.Decimal, bool) {
	args := m.Called(ctx, entity, parent, settings)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

func (m *MockPriceOverride) VariationPriceHash(ctx context.Context, entity domain.Entity, settings domain.RateSettings) map[string]string {
	args := m.Called(ctx, entity, settings)
	return args.Get(0).(map[string]string)
}

// --- Mock SettingsReaderSvc ---

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsReader) Snapshot(ctx context.Context) domain.RateSettings {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSettings)
}

// --- Mock SettingsRepositoryFacade ---

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock PriceSourceRepositoryFacade ---

type MockPriceSourceRepository struct {
	mock.Mock
}

func (m *MockPriceSourceRepository) FindEntity(ctx context.Context, productID int64) (*domain.Entity, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockPriceSourceRepository) FindPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceSource), args.Error(1)
}

func (m *MockPriceSourceRepository) SavePriceSource(ctx context.Context, source domain.PriceSource, parentID int64) error {
	args := m.Called(ctx, source, parentID)
	return args.Error(0)
}

// --- Mock PriceHistoryRepository ---

type MockPriceHistoryRepository struct {
	mock.Mock
}

func (m *MockPriceHistoryRepository) SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPriceHistoryRepository) ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceHistory), args.Error(1)
}

// --- Fakes ---

// fakeRemote serves a fixed snapshot and counts fetches.
type fakeRemote struct {
	values map[string]string
	err    error
	calls  atomic.Int32
	delay  time.Duration
}

func (f *fakeRemote) FetchLatest(ctx context.Context, apiKey string) (*domain.RemoteRateSnapshot, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.RemoteRateSnapshot{Values: f.values, FetchedAt: time.Now()}, nil
}

// fakePlatform returns stored regular prices and can re-enter the override
// the way the platform's price getters do.
type fakePlatform struct {
	prices  map[int64]decimal.Decimal
	onRead  func(ctx context.Context, productID int64)
	readErr error
}

func (f *fakePlatform) RegularPrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	if f.onRead != nil {
		f.onRead(ctx, productID)
	}
	if f.readErr != nil {
		return decimal.Zero, f.readErr
	}
	return f.prices[productID], nil
}

// fakeFetcher returns a canned page.
type fakeFetcher struct {
	body string
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	return f.body, f.err
}

var (
	_ portssvc.RateResolverSvc              = (*MockRateResolver)(nil)
	_ portssvc.ConversionSvc                = (*MockConversion)(nil)
	_ portssvc.PriceOverrideSvc             = (*MockPriceOverride)(nil)
	_ portssvc.SettingsReaderSvc            = (*MockSettingsReader)(nil)
	_ portsrepo.SettingsRepositoryFacade    = (*MockSettingsRepository)(nil)
	_ portsrepo.PriceSourceRepositoryFacade = (*MockPriceSourceRepository)(nil)
	_ portsrepo.PriceHistoryRepository      = (*MockPriceHistoryRepository)(nil)
	_ portsrepo.PlatformPrices              = (*fakePlatform)(nil)
	_ services.RemoteRateSource             = (*fakeRemote)(nil)
	_ services.PageFetcher                  = (*fakeFetcher)(nil)
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseSettings() domain.RateSettings {
	return domain.RateSettings{
		ExchangeRate:  d("50000"),
		StaticRates:   map[string]decimal.Decimal{},
		RemoteItem:    domain.DefaultRemoteItem,
		Markup:        domain.MarkupRule{Mode: domain.MarkupNone},
		FallbackMode:  domain.FallbackEnabled,
		StoreCurrency: "USD",
	}
}
