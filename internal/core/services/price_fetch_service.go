package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/middleware"
	"github.com/emjayi/price_converter/internal/utils/priceparse"
	"github.com/shopspring/decimal"
)

// DefaultPageFetchTimeout matches what admins wait for in the product editor.
const DefaultPageFetchTimeout = 30 * time.Second

// PageFetcher downloads the body of a page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (string, error)
}

// PriceFetchService scrapes a price from a product page.
type PriceFetchService struct {
	fetcher PageFetcher
	timeout time.Duration
}

func NewPriceFetchService(fetcher PageFetcher, timeout time.Duration) *PriceFetchService {
	if timeout <= 0 {
		timeout = DefaultPageFetchTimeout
	}
	return &PriceFetchService{fetcher: fetcher, timeout: timeout}
}

// FetchPrice returns the first price found on the page. Errors wrap one of
// ErrInvalidURL, ErrNetwork, ErrEmptyBody or ErrPriceNotFound.
func (s *PriceFetchService) FetchPrice(ctx context.Context, url, selector string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("url", url))

	body, err := s.fetcher.Fetch(ctx, url, s.timeout)
	if err != nil {
		logger.Warn("Failed to fetch product page", slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	amount, ok := priceparse.ExtractAmount(body, selector)
	if !ok {
		logger.Info("No price found on product page", slog.String("selector", selector))
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrPriceNotFound, url)
	}

	logger.Info("Fetched product price", slog.String("price", amount.String()))
	return amount, nil
}
