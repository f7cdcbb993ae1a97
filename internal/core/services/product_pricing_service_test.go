package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/core/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductPricingServiceTestSuite struct {
	suite.Suite
	sources    *MockPriceSourceRepository
	history    *MockPriceHistoryRepository
	settings   *MockSettingsReader
	override   *MockPriceOverride
	conversion *MockConversion
	service    *services.ProductPricingService
	ctx        context.Context
	snapshot   domain.RateSettings
}

func (suite *ProductPricingServiceTestSuite) SetupTest() {
	suite.sources = new(MockPriceSourceRepository)
	suite.history = new(MockPriceHistoryRepository)
	suite.settings = new(MockSettingsReader)
	suite.override = new(MockPriceOverride)
	suite.conversion = new(MockConversion)
	suite.service = services.NewProductPricingService(suite.sources, suite.history, suite.settings, suite.override, suite.conversion)
	suite.ctx = context.Background()
	suite.snapshot = baseSettings()
	suite.settings.On("Snapshot", suite.ctx).Return(suite.snapshot).Maybe()
}

func (suite *ProductPricingServiceTestSuite) TestSavePriceSource_New() {
	suite.sources.On("FindPriceSource", suite.ctx, int64(42)).Return(nil, apperrors.ErrNotFound).Once()
	suite.sources.On("SavePriceSource", suite.ctx, mock.MatchedBy(func(p domain.PriceSource) bool {
		return p.ProductID == 42 &&
			p.BaseAmount.Valid && p.BaseAmount.Decimal.Equal(d("19.99")) &&
			p.BaseCurrency == "EUR" &&
			p.Markup.Mode == domain.MarkupInherit &&
			p.CreatedBy == "admin-1"
	}), int64(40)).Return(nil).Once()

	amount := d("19.99")
	saved, err := suite.service.SavePriceSource(suite.ctx, 42, dto.SavePriceSourceRequest{
		ParentID:     40,
		BaseAmount:   &amount,
		BaseCurrency: "eur",
		SourceURL:    " https://shop.example/item ",
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("https://shop.example/item", saved.SourceURL)
	suite.sources.AssertExpectations(suite.T())
}

func (suite *ProductPricingServiceTestSuite) TestSavePriceSource_KeepsCreationAudit() {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &domain.PriceSource{ProductID: 42, AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: "first"}}
	suite.sources.On("FindPriceSource", suite.ctx, int64(42)).Return(existing, nil).Once()
	suite.sources.On("SavePriceSource", suite.ctx, mock.MatchedBy(func(p domain.PriceSource) bool {
		return p.CreatedAt.Equal(created) && p.CreatedBy == "first" && p.LastUpdatedBy == "second" &&
			p.BaseCurrency == "USD" && !p.BaseAmount.Valid
	}), int64(0)).Return(nil).Once()

	_, err := suite.service.SavePriceSource(suite.ctx, 42, dto.SavePriceSourceRequest{MarkupMode: "none"}, "second")
	suite.NoError(err)
	suite.sources.AssertExpectations(suite.T())
}

func (suite *ProductPricingServiceTestSuite) TestSavePriceSource_Validation() {
	negative := d("-1")
	testCases := []struct {
		name      string
		productID int64
		req       dto.SavePriceSourceRequest
	}{
		{"non-positive product", 0, dto.SavePriceSourceRequest{}},
		{"own parent", 5, dto.SavePriceSourceRequest{ParentID: 5}},
		{"unknown markup mode", 5, dto.SavePriceSourceRequest{MarkupMode: "double"}},
		{"negative markup", 5, dto.SavePriceSourceRequest{MarkupMode: "fixed", MarkupValue: &negative}},
		{"negative amount", 5, dto.SavePriceSourceRequest{BaseAmount: &negative}},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.SavePriceSource(suite.ctx, tc.productID, tc.req, "admin-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.sources.AssertNotCalled(suite.T(), "SavePriceSource", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductPricingServiceTestSuite) TestDisplayPrice_VariationLoadsParent() {
	variant := &domain.Entity{ID: 11, ParentID: 10}
	parent := &domain.Entity{ID: 10, Source: &domain.PriceSource{ProductID: 10, BaseAmount: decimal.NewNullDecimal(d("2"))}}
	suite.sources.On("FindEntity", suite.ctx, int64(11)).Return(variant, nil).Once()
	suite.sources.On("FindEntity", suite.ctx, int64(10)).Return(parent, nil).Once()
	suite.override.On("ResolveDisplayPrice", suite.ctx, *variant, parent, suite.snapshot).Return(d("100000"), true).Once()

	resp, err := suite.service.DisplayPrice(suite.ctx, 11)

	suite.Require().NoError(err)
	suite.True(resp.Override)
	suite.True(d("100000").Equal(resp.Price))
	suite.Equal("100,000", resp.FormattedPrice)
	suite.Equal("IRT", resp.Currency)
	suite.override.AssertExpectations(suite.T())
}

func (suite *ProductPricingServiceTestSuite) TestDisplayPrice_UnknownProductStillResolves() {
	suite.sources.On("FindEntity", suite.ctx, int64(9)).Return(nil, apperrors.ErrNotFound).Once()
	suite.override.On("ResolveDisplayPrice", suite.ctx, domain.Entity{ID: 9}, (*domain.Entity)(nil), suite.snapshot).
		Return(decimal.Zero, false).Once()

	resp, err := suite.service.DisplayPrice(suite.ctx, 9)

	suite.Require().NoError(err)
	suite.False(resp.Override)
	suite.Empty(resp.FormattedPrice)
}

func (suite *ProductPricingServiceTestSuite) TestDisplayPrice_RepositoryError() {
	dbErr := errors.New("connection refused")
	suite.sources.On("FindEntity", suite.ctx, int64(9)).Return(nil, dbErr).Once()

	_, err := suite.service.DisplayPrice(suite.ctx, 9)
	suite.ErrorIs(err, dbErr)
	suite.override.AssertNotCalled(suite.T(), "ResolveDisplayPrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProductPricingServiceTestSuite) TestRecordFetchedPrice() {
	entity := &domain.Entity{ID: 7, Source: &domain.PriceSource{
		ProductID:    7,
		BaseCurrency: "EUR",
		Markup:       domain.MarkupRule{Mode: domain.MarkupFixed, Value: d("1000")},
	}}
	suite.sources.On("FindEntity", suite.ctx, int64(7)).Return(entity, nil).Once()
	suite.conversion.On("Convert", suite.ctx, d("12.5"), "EUR", suite.snapshot, &domain.MarkupRule{Mode: domain.MarkupFixed, Value: d("1000")}).
		Return(d("751000")).Once()
	suite.history.On("SavePriceHistory", suite.ctx, mock.MatchedBy(func(h domain.PriceHistory) bool {
		return h.ProductID == 7 && h.HistoryID != "" && h.ConvertedPrice.Equal(d("751000")) &&
			h.SourceURL == "https://shop.example/item"
	})).Return(nil).Once()

	entry, err := suite.service.RecordFetchedPrice(suite.ctx, 7, d("12.5"), "https://shop.example/item")

	suite.Require().NoError(err)
	suite.True(d("12.5").Equal(entry.OriginalPrice))
	suite.False(entry.CreatedAt.IsZero())
	suite.conversion.AssertExpectations(suite.T())
	suite.history.AssertExpectations(suite.T())
}

func (suite *ProductPricingServiceTestSuite) TestListPriceHistory_ClampsLimit() {
	suite.history.On("ListPriceHistory", suite.ctx, int64(7), 20).Return([]domain.PriceHistory{}, nil).Once()
	suite.history.On("ListPriceHistory", suite.ctx, int64(7), 100).Return([]domain.PriceHistory{}, nil).Once()

	_, err := suite.service.ListPriceHistory(suite.ctx, 7, 0)
	suite.NoError(err)
	_, err = suite.service.ListPriceHistory(suite.ctx, 7, 5000)
	suite.NoError(err)
	suite.history.AssertExpectations(suite.T())
}

func TestProductPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductPricingServiceTestSuite))
}
