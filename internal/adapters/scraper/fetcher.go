package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/go-resty/resty/v2"
)

// BrowserUserAgent is sent with every page request; many shops refuse bare clients.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// PageFetcher retrieves product pages for the price extractor.
type PageFetcher struct {
	client *resty.Client
}

// NewPageFetcher creates a fetcher. One GET per call, no retries.
func NewPageFetcher() *PageFetcher {
	client := resty.New().
		SetHeader("User-Agent", BrowserUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetRetryCount(0)
	return &PageFetcher{client: client}
}

// Fetch returns the body of rawURL. Errors wrap ErrInvalidURL, ErrNetwork or
// ErrEmptyBody so callers can tell the failure kinds apart.
func (f *PageFetcher) Fetch(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: %s returned status %d", apperrors.ErrNetwork, rawURL, resp.StatusCode())
	}

	body := resp.String()
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("%w: %s", apperrors.ErrEmptyBody, rawURL)
	}
	return body, nil
}

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("%w: no URL provided", apperrors.ErrInvalidURL)
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an http(s) URL", apperrors.ErrInvalidURL, rawURL)
	}
	return nil
}
