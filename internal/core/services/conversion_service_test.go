package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConvert(t *testing.T) {
	ctx := context.Background()
	resolver := services.NewRateResolver(nil, services.NewRateCache(time.Minute), services.NewFetchLock(time.Second))
	svc := services.NewConversionService(resolver)

	flat := baseSettings()

	withPercent := baseSettings()
	withPercent.Markup = domain.MarkupRule{Mode: domain.MarkupPercent, Value: d("10")}

	withEuro := baseSettings()
	withEuro.StaticRates = map[string]decimal.Decimal{"EUR": d("60000")}

	testCases := []struct {
		name     string
		amount   string
		code     string
		settings domain.RateSettings
		override *domain.MarkupRule
		want     string
	}{
		{"flat rate", "2", "USD", flat, nil, "100000"},
		{"global percent markup", "2", "USD", withPercent, nil, "110000"},
		{"static euro", "1", "EUR", withEuro, nil, "60000"},
		{"toman passes through", "12345", "IRT", flat, nil, "12345"},
		{"rial is a tenth", "125", "IRR", flat, nil, "13"},
		{"rounds half away from zero", "0.00001", "USD", flat, nil, "1"},
		{"override replaces global", "2", "USD", withPercent, &domain.MarkupRule{Mode: domain.MarkupFixed, Value: d("500")}, "100500"},
		{"override none disables global", "2", "USD", withPercent, &domain.MarkupRule{Mode: domain.MarkupNone}, "100000"},
		{"inherit override falls back to global", "2", "USD", withPercent, &domain.MarkupRule{Mode: domain.MarkupInherit}, "110000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Convert(ctx, d(tc.amount), tc.code, tc.settings, tc.override)
			assert.True(t, d(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestConvert_UsesResolvedRate(t *testing.T) {
	rates := new(MockRateResolver)
	settings := baseSettings()
	rates.On("ResolveRate", mock.Anything, "AED", settings).Return(d("16750.5")).Once()

	got := services.NewConversionService(rates).Convert(context.Background(), d("3"), "AED", settings, nil)

	assert.True(t, d("50252").Equal(got), "got %s", got)
	rates.AssertExpectations(t)
}

func TestConvert_SameSnapshotGivesSameResult(t *testing.T) {
	remote := &fakeRemote{values: map[string]string{"usd_sell": "61,500", "eur_sell": "67000"}}
	resolver := services.NewRateResolver(remote, services.NewRateCache(time.Minute), services.NewFetchLock(time.Second))
	svc := services.NewConversionService(resolver)

	settings := baseSettings()
	settings.APIKey = "key"
	settings.Markup = domain.MarkupRule{Mode: domain.MarkupPercent, Value: d("7.5")}

	testCases := []struct {
		amount string
		code   string
	}{
		{"19.99", "USD"},
		{"3", "EUR"},
	}
	for _, tc := range testCases {
		first := svc.Convert(context.Background(), d(tc.amount), tc.code, settings, nil)
		second := svc.Convert(context.Background(), d(tc.amount), tc.code, settings, nil)
		assert.True(t, first.Equal(second), "%s %s: %s then %s", tc.amount, tc.code, first, second)
	}
	assert.Equal(t, int32(1), remote.calls.Load(), "snapshot fetched once and reused")
}
