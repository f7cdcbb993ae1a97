package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource holds the conversion inputs an admin attached to a product or
// variation.
type PriceSource struct {
	ProductID    int64               `json:"productID"`
	BaseAmount   decimal.NullDecimal `json:"baseAmount"`
	BaseCurrency string              `json:"baseCurrency"` // uppercased, defaults to USD
	SourceURL    string              `json:"sourceURL"`
	Selector     string              `json:"selector"`
	Markup       MarkupRule          `json:"markup"`
	AuditFields
}

// Currency returns the record's currency, defaulting to USD.
func (p *PriceSource) Currency() string {
	if p == nil || NormalizeCurrency(p.BaseCurrency) == "" {
		return DefaultBaseCurrency
	}
	return NormalizeCurrency(p.BaseCurrency)
}

// HasBaseAmount reports whether the record carries a base amount at all.
func (p *PriceSource) HasBaseAmount() bool {
	return p != nil && p.BaseAmount.Valid
}

// MarkupRule returns the record's markup scope; a missing record inherits.
func (p *PriceSource) MarkupRule() MarkupRule {
	if p == nil {
		return MarkupRule{Mode: MarkupInherit}
	}
	return p.Markup
}

// Entity is a catalog product or variation as the price getters see it.
// ParentID is zero for top-level products.
type Entity struct {
	ID             int64
	ParentID       int64
	Source         *PriceSource
	LegacyUSDPrice decimal.NullDecimal // single-currency field written by older releases
}

// PriceHistory records a fetched source price and its Toman conversion.
type PriceHistory struct {
	HistoryID      string          `json:"historyID"`
	ProductID      int64           `json:"productID"`
	OriginalPrice  decimal.Decimal `json:"originalPrice"`
	ConvertedPrice decimal.Decimal `json:"convertedPrice"`
	SourceURL      string          `json:"sourceURL"`
	CreatedAt      time.Time       `json:"createdAt"`
}
