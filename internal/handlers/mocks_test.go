package handlers_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/emjayi/price_converter/internal/handlers"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/emjayi/price_converter/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
)

const testSecret = "handler-test-secret"

// --- Mock PriceFetchSvc ---
type MockPriceFetch struct {
	mock.Mock
}

func (m *MockPriceFetch) FetchPrice(ctx context.Context, url, selector string) (decimal.Decimal, error) {
	args := m.Called(ctx, url, selector)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ConversionSvc ---
type MockConversion struct {
	mock.Mock
}

func (m *MockConversion) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, settings domain.RateSettings, override *domain.MarkupRule) decimal.Decimal {
	args := m.Called(ctx, amount, currencyCode, settings, override)
	return args.Get(0).(decimal.Decimal)
}

// --- Mock SettingsSvcFacade ---
type MockSettings struct {
	mock.Mock
}

func (m *MockSettings) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettings) Snapshot(ctx context.Context) domain.RateSettings {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSettings)
}

func (m *MockSettings) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

// --- Mock ProductPricingSvcFacade ---
type MockProductPricing struct {
	mock.Mock
}

func (m *MockProductPricing) GetPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceSource), args.Error(1)
}

func (m *MockProductPricing) DisplayPrice(ctx context.Context, productID int64) (*dto.DisplayPriceResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DisplayPriceResponse), args.Error(1)
}

func (m *MockProductPricing) ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceHistory), args.Error(1)
}

func (m *MockProductPricing) SavePriceSource(ctx context.Context, productID int64, req dto.SavePriceSourceRequest, userID string) (*domain.PriceSource, error) {
	args := m.Called(ctx, productID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceSource), args.Error(1)
}

func (m *MockProductPricing) RecordFetchedPrice(ctx context.Context, productID int64, originalPrice decimal.Decimal, sourceURL string) (*domain.PriceHistory, error) {
	args := m.Called(ctx, productID, originalPrice, sourceURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceHistory), args.Error(1)
}

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

var (
	_ portssvc.PriceFetchSvc           = (*MockPriceFetch)(nil)
	_ portssvc.ConversionSvc           = (*MockConversion)(nil)
	_ portssvc.SettingsSvcFacade       = (*MockSettings)(nil)
	_ portssvc.ProductPricingSvcFacade = (*MockProductPricing)(nil)
	_ portssvc.RateResolverSvc         = (*MockRateResolver)(nil)
)

type testMocks struct {
	fetch          *MockPriceFetch
	conversion     *MockConversion
	settings       *MockSettings
	productPricing *MockProductPricing
	rates          *MockRateResolver
}

func newTestMocks() *testMocks {
	return &testMocks{
		fetch:          new(MockPriceFetch),
		conversion:     new(MockConversion),
		settings:       new(MockSettings),
		productPricing: new(MockProductPricing),
		rates:          new(MockRateResolver),
	}
}

func (tm *testMocks) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Settings:       tm.settings,
		RateResolver:   tm.rates,
		Conversion:     tm.conversion,
		PriceFetch:     tm.fetch,
		ProductPricing: tm.productPricing,
	}
}

func newTestRouter(t *testing.T, tm *testMocks, fetchLimiter *limiter.Limiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(r, &config.Config{JWTSecret: testSecret, IsProduction: true}, tm.container(), fetchLimiter)
	return r
}

func signToken(t *testing.T, subject string, caps ...string) string {
	t.Helper()
	claims := middleware.Claims{
		Capabilities: caps,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// doRequest sends an authenticated request as an admin.
func doRequest(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestAs(t, r, method, path, body, signToken(t, "admin-1", middleware.CapabilityManagePricing))
}

func doRequestAs(t *testing.T, r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSnapshot() domain.RateSettings {
	return domain.RateSettings{
		ExchangeRate:  d("50000"),
		StaticRates:   map[string]decimal.Decimal{"EUR": d("60000")},
		RemoteItem:    domain.DefaultRemoteItem,
		Markup:        domain.MarkupRule{Mode: domain.MarkupNone},
		FallbackMode:  domain.FallbackEnabled,
		StoreCurrency: "USD",
	}
}
