package dto

import (
	"time"

	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavePriceSourceRequest sets the conversion inputs of a product or variation.
type SavePriceSourceRequest struct {
	ParentID     int64            `json:"parentID" binding:"omitempty,gt=0"` // Optional: set for variations
	BaseAmount   *decimal.Decimal `json:"baseAmount"`                        // Optional: nil clears the amount
	BaseCurrency string           `json:"baseCurrency" binding:"omitempty,currency_code"`
	SourceURL    string           `json:"sourceURL" binding:"omitempty,url"`
	Selector     string           `json:"selector"`
	MarkupMode   string           `json:"markupMode" binding:"omitempty,markup_mode"`
	MarkupValue  *decimal.Decimal `json:"markupValue"`
}

// PriceSourceResponse defines the data returned for a product's price source.
type PriceSourceResponse struct {
	ProductID     int64            `json:"productID"`
	BaseAmount    *decimal.Decimal `json:"baseAmount"`
	BaseCurrency  string           `json:"baseCurrency"`
	SourceURL     string           `json:"sourceURL"`
	Selector      string           `json:"selector"`
	MarkupMode    string           `json:"markupMode"`
	MarkupValue   decimal.Decimal  `json:"markupValue"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy string           `json:"lastUpdatedBy"`
}

// ToPriceSourceResponse converts a domain.PriceSource to PriceSourceResponse DTO
func ToPriceSourceResponse(p *domain.PriceSource) PriceSourceResponse {
	resp := PriceSourceResponse{
		ProductID:     p.ProductID,
		BaseCurrency:  p.Currency(),
		SourceURL:     p.SourceURL,
		Selector:      p.Selector,
		MarkupMode:    string(p.MarkupRule().Mode),
		MarkupValue:   p.Markup.Value,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
	if p.BaseAmount.Valid {
		amount := p.BaseAmount.Decimal
		resp.BaseAmount = &amount
	}
	return resp
}

// PriceHistoryResponse is one recorded price fetch.
type PriceHistoryResponse struct {
	HistoryID      string          `json:"historyID"`
	ProductID      int64           `json:"productID"`
	OriginalPrice  decimal.Decimal `json:"originalPrice"`
	ConvertedPrice decimal.Decimal `json:"convertedPrice"`
	SourceURL      string          `json:"sourceURL"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToPriceHistoryResponses converts history rows to their DTOs
func ToPriceHistoryResponses(rows []domain.PriceHistory) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, len(rows))
	for i, h := range rows {
		out[i] = PriceHistoryResponse{
			HistoryID:      h.HistoryID,
			ProductID:      h.ProductID,
			OriginalPrice:  h.OriginalPrice,
			ConvertedPrice: h.ConvertedPrice,
			SourceURL:      h.SourceURL,
			CreatedAt:      h.CreatedAt,
		}
	}
	return out
}
