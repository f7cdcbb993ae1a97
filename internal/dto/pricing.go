package dto

import (
	"github.com/shopspring/decimal"
)

// FetchPriceRequest asks the server to scrape a price from a product page.
type FetchPriceRequest struct {
	URL       string `json:"url" binding:"required"`
	Selector  string `json:"selector"`
	ProductID *int64 `json:"product_id" binding:"omitempty,gt=0"` // Optional: record the fetch in the product's history
}

// FetchPriceResponse is the scraped amount. The page currency is assumed to be USD.
type FetchPriceResponse struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// ConvertPriceRequest converts an amount to Toman with an optional markup override.
type ConvertPriceRequest struct {
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Currency    string           `json:"currency" binding:"omitempty,currency_code"`
	MarkupMode  string           `json:"markup_mode" binding:"omitempty,markup_mode"`
	MarkupValue *decimal.Decimal `json:"markup_value"`
}

// ConvertPriceResponse carries the converted amount and its display form.
type ConvertPriceResponse struct {
	OriginalPrice  decimal.Decimal `json:"original_price"`
	ConvertedPrice decimal.Decimal `json:"converted_price"`
	FormattedPrice string          `json:"formatted_price"`
	Currency       string          `json:"currency"`
}

// DisplayPriceResponse is the price a storefront shows for a product.
// Override is false when the platform's stored price stays in effect.
type DisplayPriceResponse struct {
	ProductID      int64           `json:"productID"`
	Override       bool            `json:"override"`
	Price          decimal.Decimal `json:"price"`
	FormattedPrice string          `json:"formattedPrice,omitempty"`
	Currency       string          `json:"currency,omitempty"`
}

// PricingHealthResponse summarizes the state of the pricing pipeline.
type PricingHealthResponse struct {
	PriceOverrideEnabled bool   `json:"priceOverrideEnabled"`
	APIKeyConfigured     bool   `json:"apiKeyConfigured"`
	RemoteItem           string `json:"remoteItem"`
	StaticRateCount      int    `json:"staticRateCount"`
	MarkupMode           string `json:"markupMode"`
	FetchInProgress      bool   `json:"fetchInProgress"`
	SnapshotCached       bool   `json:"snapshotCached"`
	SnapshotItems        int    `json:"snapshotItems"`
	SnapshotAgeSeconds   int64  `json:"snapshotAgeSeconds,omitempty"`
	USDRate              string `json:"usdRate"`
}
