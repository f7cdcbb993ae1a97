package services

import (
	"context"
	"log/slog"

	"github.com/emjayi/price_converter/internal/core/domain"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/shopspring/decimal"
)

// ConversionService converts an amount in any currency to whole Toman.
type ConversionService struct {
	rates portssvc.RateResolverSvc
}

func NewConversionService(rates portssvc.RateResolverSvc) *ConversionService {
	return &ConversionService{rates: rates}
}

// Convert multiplies by the resolved rate, applies the markup and rounds half
// away from zero. A nil override uses the global markup from settings; an
// override that is not explicit falls through to it as well.
func (s *ConversionService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, settings domain.RateSettings, override *domain.MarkupRule) decimal.Decimal {
	rate := s.rates.ResolveRate(ctx, currencyCode, settings)

	rule := settings.Markup
	if override != nil {
		rule = ResolveMarkupScope(*override, domain.MarkupRule{Mode: domain.MarkupInherit}, settings.Markup)
	}

	converted := ApplyMarkup(amount.Mul(rate), rule).Round(0)
	middleware.GetLoggerFromCtx(ctx).Debug("Converted amount",
		slog.String("amount", amount.String()),
		slog.String("currency", currencyCode),
		slog.String("rate", rate.String()),
		slog.String("markup_mode", string(rule.Mode)),
		slog.String("result", converted.String()))
	return converted
}
