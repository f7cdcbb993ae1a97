package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/shopspring/decimal"
)

type resolutionGuardKey struct{}

// resolutionGuard is the set of entity IDs whose display price is being
// resolved on the current call chain.
type resolutionGuard struct {
	mu         sync.Mutex
	inProgress map[int64]struct{}
}

// enterResolution marks id as in progress. It returns false when id is already
// being resolved further up the chain. The returned context carries the guard
// and must be used for every nested call.
func enterResolution(ctx context.Context, id int64) (context.Context, func(), bool) {
	guard, ok := ctx.Value(resolutionGuardKey{}).(*resolutionGuard)
	if !ok {
		guard = &resolutionGuard{inProgress: make(map[int64]struct{})}
		ctx = context.WithValue(ctx, resolutionGuardKey{}, guard)
	}

	guard.mu.Lock()
	defer guard.mu.Unlock()
	if _, busy := guard.inProgress[id]; busy {
		return ctx, func() {}, false
	}
	guard.inProgress[id] = struct{}{}

	return ctx, func() {
		guard.mu.Lock()
		delete(guard.inProgress, id)
		guard.mu.Unlock()
	}, true
}

// PriceOverrideService substitutes converted Toman prices for the prices the
// platform stores.
type PriceOverrideService struct {
	conversion portssvc.ConversionSvc
	rates      portssvc.RateResolverSvc
	platform   portsrepo.PlatformPrices
}

func NewPriceOverrideService(conversion portssvc.ConversionSvc, rates portssvc.RateResolverSvc, platform portsrepo.PlatformPrices) *PriceOverrideService {
	return &PriceOverrideService{conversion: conversion, rates: rates, platform: platform}
}

// ResolveDisplayPrice returns false whenever the stored price should be shown
// as is: the kill switch is off, no positive base amount exists, the entity is
// already being resolved on this call chain, or anything fails.
func (s *PriceOverrideService) ResolveDisplayPrice(ctx context.Context, entity domain.Entity, parent *domain.Entity, settings domain.RateSettings) (price decimal.Decimal, ok bool) {
	if !settings.PriceOverrideEnabled() {
		return decimal.Zero, false
	}

	logger := middleware.GetLoggerFromCtx(ctx).With(slog.Int64("product_id", entity.ID))

	ctx, release, entered := enterResolution(ctx, entity.ID)
	if !entered {
		logger.Debug("Price resolution re-entered, leaving stored price")
		return decimal.Zero, false
	}
	defer release()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("Price override failed, leaving stored price", slog.Any("panic", rec))
			price, ok = decimal.Zero, false
		}
	}()

	amount, currency, found := s.baseAmount(ctx, entity, parent, settings)
	if !found {
		return decimal.Zero, false
	}

	var parentRule domain.MarkupRule
	if parent != nil {
		parentRule = parent.Source.MarkupRule()
	}
	rule := ResolveMarkupScope(entity.Source.MarkupRule(), parentRule, settings.Markup)

	return s.conversion.Convert(ctx, amount, currency, settings, &rule), true
}

// baseAmount walks the entity record, its legacy field, the parent's record,
// the parent's legacy field and finally the platform's regular price.
func (s *PriceOverrideService) baseAmount(ctx context.Context, entity domain.Entity, parent *domain.Entity, settings domain.RateSettings) (decimal.Decimal, string, bool) {
	if amount, currency, ok := recordAmount(entity); ok {
		return amount, currency, true
	}
	if parent != nil {
		if amount, currency, ok := recordAmount(*parent); ok {
			return amount, currency, true
		}
	}

	if s.platform == nil {
		return decimal.Zero, "", false
	}
	regular, err := s.platform.RegularPrice(ctx, entity.ID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to read platform regular price",
			slog.Int64("product_id", entity.ID), slog.String("error", err.Error()))
		return decimal.Zero, "", false
	}
	if !regular.IsPositive() {
		return decimal.Zero, "", false
	}
	return regular, settings.StoreCurrency, true
}

func recordAmount(e domain.Entity) (decimal.Decimal, string, bool) {
	if e.Source.HasBaseAmount() && e.Source.BaseAmount.Decimal.IsPositive() {
		return e.Source.BaseAmount.Decimal, e.Source.Currency(), true
	}
	if e.LegacyUSDPrice.Valid && e.LegacyUSDPrice.Decimal.IsPositive() {
		return e.LegacyUSDPrice.Decimal, domain.DefaultBaseCurrency, true
	}
	return decimal.Zero, "", false
}

// VariationPriceHash lists the inputs that change a variation's displayed
// price. Caches of variation prices keyed on it are invalidated whenever the
// rate, the base amount or the markup changes.
func (s *PriceOverrideService) VariationPriceHash(ctx context.Context, entity domain.Entity, settings domain.RateSettings) map[string]string {
	hash := map[string]string{
		"pc_fallback_mode": string(settings.FallbackMode),
		"pc_markup_mode":   string(settings.Markup.Mode),
		"pc_markup_value":  settings.Markup.Value.String(),
	}
	if !settings.PriceOverrideEnabled() {
		return hash
	}

	amount, currency, ok := recordAmount(entity)
	if !ok {
		return hash
	}
	hash["pc_product_id"] = strconv.FormatInt(entity.ID, 10)
	hash["pc_parent_currency"] = currency
	hash["pc_parent_amount"] = amount.String()
	hash["pc_rate_irt"] = s.rates.ResolveRate(ctx, currency, settings).String()
	own := entity.Source.MarkupRule()
	hash["pc_own_markup"] = string(own.Mode) + ":" + own.Value.String()
	return hash
}
