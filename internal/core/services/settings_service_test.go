package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/core/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  *services.SettingsService
	ctx      context.Context
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo, "usd")
	suite.ctx = context.Background()
}

func strPtr(s string) *string          { return &s }
func decPtr(s string) *decimal.Decimal { v := d(s); return &v }
func boolPtr(b bool) *bool             { return &b }

func storedSettings(mut func(*domain.Settings)) *domain.Settings {
	s := domain.DefaultSettings()
	if mut != nil {
		mut(&s)
	}
	return &s
}

func (suite *SettingsServiceTestSuite) TestGetSettings_DefaultsWhenNothingStored() {
	suite.mockRepo.On("FindSettings", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(suite.ctx)
	suite.NoError(err)
	suite.Equal(domain.FallbackEnabled, settings.FallbackMode)
	suite.Equal(domain.DefaultRemoteItem, settings.NavasanItem)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSnapshot_StorageErrorFallsBackToDefaults() {
	suite.mockRepo.On("FindSettings", suite.ctx).Return(nil, errors.New("connection reset")).Once()

	rs := suite.service.Snapshot(suite.ctx)
	suite.True(rs.PriceOverrideEnabled())
	suite.True(rs.FlatRate().Equal(decimal.NewFromInt(1)))
	suite.Equal("USD", rs.StoreCurrency)
}

func (suite *SettingsServiceTestSuite) TestSnapshot_MalformedCustomRatesIgnored() {
	stored := storedSettings(func(s *domain.Settings) {
		s.ExchangeRate = d("50000")
		s.CustomRates = `{"EUR": 60000`
		s.NavasanAPIKey = "  key  "
	})
	suite.mockRepo.On("FindSettings", suite.ctx).Return(stored, nil).Once()

	rs := suite.service.Snapshot(suite.ctx)
	suite.Empty(rs.StaticRates)
	suite.Equal("key", rs.APIKey)
	suite.True(rs.FlatRate().Equal(d("50000")))
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	suite.mockRepo.On("FindSettings", suite.ctx).Return(storedSettings(nil), nil).Once()
	suite.mockRepo.On("SaveSettings", suite.ctx, mock.MatchedBy(func(s domain.Settings) bool {
		return s.CurrencyFrom == "EUR" &&
			s.InterestMode == domain.MarkupPercent &&
			s.InterestValue.Equal(d("10")) &&
			s.NavasanItem == "usd_buy" &&
			s.FallbackMode == domain.FallbackDisabled &&
			s.AutoUpdate &&
			s.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSettings(suite.ctx, dto.UpdateSettingsRequest{
		CurrencyFrom:  strPtr(" eur"),
		InterestMode:  strPtr("PERCENT"),
		InterestValue: decPtr("10"),
		NavasanItem:   strPtr(" USD_BUY "),
		FallbackMode:  strPtr("Disabled"),
		AutoUpdate:    boolPtr(true),
		CustomRates:   strPtr(`{"EUR": "60,000", "AED": 16750}`),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(`{"EUR": "60,000", "AED": 16750}`, updated.CustomRates)
	suite.True(updated.ExchangeRate.Equal(decimal.NewFromInt(1)), "fields not provided keep their value")
	suite.False(updated.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Validation() {
	testCases := []struct {
		name string
		req  dto.UpdateSettingsRequest
	}{
		{"negative exchange rate", dto.UpdateSettingsRequest{ExchangeRate: decPtr("-1")}},
		{"custom rates not json", dto.UpdateSettingsRequest{CustomRates: strPtr("EUR=60000")}},
		{"unknown markup mode", dto.UpdateSettingsRequest{InterestMode: strPtr("double")}},
		{"inherit is not a global mode", dto.UpdateSettingsRequest{InterestMode: strPtr("inherit")}},
		{"negative markup value", dto.UpdateSettingsRequest{InterestValue: decPtr("-5")}},
		{"unknown fallback mode", dto.UpdateSettingsRequest{FallbackMode: strPtr("off")}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockRepo.On("FindSettings", suite.ctx).Return(storedSettings(nil), nil).Once()

			_, err := suite.service.UpdateSettings(suite.ctx, tc.req, "admin-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SaveError() {
	saveErr := errors.New("disk full")
	suite.mockRepo.On("FindSettings", suite.ctx).Return(storedSettings(nil), nil).Once()
	suite.mockRepo.On("SaveSettings", suite.ctx, mock.Anything).Return(saveErr).Once()

	_, err := suite.service.UpdateSettings(suite.ctx, dto.UpdateSettingsRequest{}, "admin-1")
	suite.ErrorIs(err, saveErr)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
