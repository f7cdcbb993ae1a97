package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/domain"
	portsrepo "github.com/emjayi/price_converter/internal/core/ports/repositories"
	portssvc "github.com/emjayi/price_converter/internal/core/ports/services"
	"github.com/emjayi/price_converter/internal/dto"
	"github.com/emjayi/price_converter/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ProductPricingService manages the price sources attached to catalog
// products and computes their display prices.
type ProductPricingService struct {
	BaseService
	sources    portsrepo.PriceSourceRepositoryFacade
	history    portsrepo.PriceHistoryRepository
	settings   portssvc.SettingsReaderSvc
	override   portssvc.PriceOverrideSvc
	conversion portssvc.ConversionSvc
}

func NewProductPricingService(
	sources portsrepo.PriceSourceRepositoryFacade,
	history portsrepo.PriceHistoryRepository,
	settings portssvc.SettingsReaderSvc,
	override portssvc.PriceOverrideSvc,
	conversion portssvc.ConversionSvc,
) *ProductPricingService {
	return &ProductPricingService{
		sources:    sources,
		history:    history,
		settings:   settings,
		override:   override,
		conversion: conversion,
	}
}

func (s *ProductPricingService) GetPriceSource(ctx context.Context, productID int64) (*domain.PriceSource, error) {
	source, err := s.sources.FindPriceSource(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find price source", slog.Int64("product_id", productID))
		}
		return nil, err
	}
	return source, nil
}

func (s *ProductPricingService) SavePriceSource(ctx context.Context, productID int64, req dto.SavePriceSourceRequest, userID string) (*domain.PriceSource, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", apperrors.ErrValidation)
	}
	if req.ParentID == productID {
		return nil, fmt.Errorf("%w: a product cannot be its own parent", apperrors.ErrValidation)
	}

	mode, ok := domain.ParseMarkupMode(req.MarkupMode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown markup mode %q", apperrors.ErrValidation, req.MarkupMode)
	}
	markupValue := decimal.Zero
	if req.MarkupValue != nil {
		if req.MarkupValue.IsNegative() {
			return nil, fmt.Errorf("%w: markup value must not be negative", apperrors.ErrValidation)
		}
		markupValue = *req.MarkupValue
	}

	var baseAmount decimal.NullDecimal
	if req.BaseAmount != nil {
		if req.BaseAmount.IsNegative() {
			return nil, fmt.Errorf("%w: base amount must not be negative", apperrors.ErrValidation)
		}
		baseAmount = decimal.NewNullDecimal(*req.BaseAmount)
	}

	currency := domain.NormalizeCurrency(req.BaseCurrency)
	if currency == "" {
		currency = domain.DefaultBaseCurrency
	}

	now := time.Now()
	source := domain.PriceSource{
		ProductID:    productID,
		BaseAmount:   baseAmount,
		BaseCurrency: currency,
		SourceURL:    strings.TrimSpace(req.SourceURL),
		Selector:     strings.TrimSpace(req.Selector),
		Markup:       domain.MarkupRule{Mode: mode, Value: markupValue},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	existing, err := s.sources.FindPriceSource(ctx, productID)
	switch {
	case err == nil:
		source.CreatedAt = existing.CreatedAt
		source.CreatedBy = existing.CreatedBy
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to read existing price source", slog.Int64("product_id", productID))
		return nil, err
	}

	if err := s.sources.SavePriceSource(ctx, source, req.ParentID); err != nil {
		s.LogError(ctx, err, "Failed to save price source", slog.Int64("product_id", productID))
		return nil, err
	}

	s.LogInfo(ctx, "Price source saved", slog.Int64("product_id", productID), slog.String("currency", currency))
	return &source, nil
}

// DisplayPrice returns the price a storefront shows for productID. Products
// without a stored record still go through the platform price fallback.
func (s *ProductPricingService) DisplayPrice(ctx context.Context, productID int64) (*dto.DisplayPriceResponse, error) {
	entity, parent, err := s.loadEntity(ctx, productID)
	if err != nil {
		return nil, err
	}

	settings := s.settings.Snapshot(ctx)
	resp := &dto.DisplayPriceResponse{ProductID: productID}

	price, ok := s.override.ResolveDisplayPrice(ctx, *entity, parent, settings)
	if !ok {
		return resp, nil
	}
	resp.Override = true
	resp.Price = price
	resp.FormattedPrice = utils.FormatToman(price)
	resp.Currency = domain.TargetCurrency
	return resp, nil
}

func (s *ProductPricingService) ListPriceHistory(ctx context.Context, productID int64, limit int) ([]domain.PriceHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	rows, err := s.history.ListPriceHistory(ctx, productID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list price history", slog.Int64("product_id", productID))
		return nil, err
	}
	return rows, nil
}

// RecordFetchedPrice converts a scraped price with the product's markup scope
// and appends it to the history. The page currency is the record's currency.
func (s *ProductPricingService) RecordFetchedPrice(ctx context.Context, productID int64, originalPrice decimal.Decimal, sourceURL string) (*domain.PriceHistory, error) {
	entity, parent, err := s.loadEntity(ctx, productID)
	if err != nil {
		return nil, err
	}

	var parentRule domain.MarkupRule
	if parent != nil {
		parentRule = parent.Source.MarkupRule()
	}
	settings := s.settings.Snapshot(ctx)
	rule := ResolveMarkupScope(entity.Source.MarkupRule(), parentRule, settings.Markup)

	entry := domain.PriceHistory{
		HistoryID:      uuid.NewString(),
		ProductID:      productID,
		OriginalPrice:  originalPrice,
		ConvertedPrice: s.conversion.Convert(ctx, originalPrice, entity.Source.Currency(), settings, &rule),
		SourceURL:      sourceURL,
		CreatedAt:      time.Now(),
	}
	if err := s.history.SavePriceHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save price history", slog.Int64("product_id", productID))
		return nil, err
	}
	return &entry, nil
}

// loadEntity loads productID and, for variations, its parent. Unknown IDs are
// returned as bare entities so the platform price can still be used.
func (s *ProductPricingService) loadEntity(ctx context.Context, productID int64) (*domain.Entity, *domain.Entity, error) {
	if productID <= 0 {
		return nil, nil, fmt.Errorf("%w: product ID must be positive", apperrors.ErrValidation)
	}

	entity, err := s.findEntity(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if entity.ParentID == 0 {
		return entity, nil, nil
	}
	parent, err := s.findEntity(ctx, entity.ParentID)
	if err != nil {
		return nil, nil, err
	}
	return entity, parent, nil
}

func (s *ProductPricingService) findEntity(ctx context.Context, productID int64) (*domain.Entity, error) {
	entity, err := s.sources.FindEntity(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.Entity{ID: productID}, nil
		}
		s.LogError(ctx, err, "Failed to load product", slog.Int64("product_id", productID))
		return nil, err
	}
	return entity, nil
}
