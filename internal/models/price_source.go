package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource is a row of price_sources.
type PriceSource struct {
	ProductID    int64               `db:"product_id"`
	ParentID     *int64              `db:"parent_id"` // Nullable
	BaseAmount   decimal.NullDecimal `db:"base_amount"`
	BaseCurrency string              `db:"base_currency"`
	SourceURL    string              `db:"source_url"`
	Selector     string              `db:"selector"`
	MarkupMode   string              `db:"markup_mode"`
	MarkupValue  decimal.Decimal     `db:"markup_value"`
	AuditFields
}

// CatalogProduct is a row of catalog_products, the platform's own product table.
type CatalogProduct struct {
	ProductID      int64               `db:"product_id"`
	ParentID       *int64              `db:"parent_id"`
	RegularPrice   decimal.NullDecimal `db:"regular_price"`
	LegacyUSDPrice decimal.NullDecimal `db:"legacy_usd_price"`
}

// PriceHistory is a row of price_history.
type PriceHistory struct {
	HistoryID      string          `db:"history_id"`
	ProductID      int64           `db:"product_id"`
	OriginalPrice  decimal.Decimal `db:"original_price"`
	ConvertedPrice decimal.Decimal `db:"converted_price"`
	SourceURL      string          `db:"source_url"`
	CreatedAt      time.Time       `db:"created_at"`
}
