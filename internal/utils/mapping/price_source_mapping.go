package mapping

import (
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/models"
)

// ToModelPriceSource converts a domain PriceSource to a model PriceSource
func ToModelPriceSource(d domain.PriceSource, parentID int64) models.PriceSource {
	m := models.PriceSource{
		ProductID:    d.ProductID,
		BaseAmount:   d.BaseAmount,
		BaseCurrency: d.Currency(),
		SourceURL:    d.SourceURL,
		Selector:     d.Selector,
		MarkupMode:   string(d.MarkupRule().Mode),
		MarkupValue:  d.Markup.Value,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if m.MarkupMode == "" {
		m.MarkupMode = string(domain.MarkupInherit)
	}
	if parentID > 0 {
		m.ParentID = &parentID
	}
	return m
}

// ToDomainPriceSource converts a model PriceSource to a domain PriceSource.
// Unknown markup modes read back as inherit.
func ToDomainPriceSource(m models.PriceSource) domain.PriceSource {
	mode, ok := domain.ParseMarkupMode(m.MarkupMode)
	if !ok {
		mode = domain.MarkupInherit
	}
	return domain.PriceSource{
		ProductID:    m.ProductID,
		BaseAmount:   m.BaseAmount,
		BaseCurrency: domain.NormalizeCurrency(m.BaseCurrency),
		SourceURL:    m.SourceURL,
		Selector:     m.Selector,
		Markup:       domain.MarkupRule{Mode: mode, Value: m.MarkupValue},
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntity combines the catalog row and the optional price source into
// the entity the price override works on.
func ToDomainEntity(productID int64, catalog *models.CatalogProduct, source *models.PriceSource) domain.Entity {
	e := domain.Entity{ID: productID}
	if catalog != nil {
		if catalog.ParentID != nil {
			e.ParentID = *catalog.ParentID
		}
		e.LegacyUSDPrice = catalog.LegacyUSDPrice
	}
	if source != nil {
		if e.ParentID == 0 && source.ParentID != nil {
			e.ParentID = *source.ParentID
		}
		ps := ToDomainPriceSource(*source)
		e.Source = &ps
	}
	return e
}

// ToModelPriceHistory converts a domain PriceHistory to a model PriceHistory
func ToModelPriceHistory(d domain.PriceHistory) models.PriceHistory {
	return models.PriceHistory{
		HistoryID:      d.HistoryID,
		ProductID:      d.ProductID,
		OriginalPrice:  d.OriginalPrice,
		ConvertedPrice: d.ConvertedPrice,
		SourceURL:      d.SourceURL,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainPriceHistorySlice converts history rows to domain values
func ToDomainPriceHistorySlice(ms []models.PriceHistory) []domain.PriceHistory {
	ds := make([]domain.PriceHistory, len(ms))
	for i, m := range ms {
		ds[i] = domain.PriceHistory{
			HistoryID:      m.HistoryID,
			ProductID:      m.ProductID,
			OriginalPrice:  m.OriginalPrice,
			ConvertedPrice: m.ConvertedPrice,
			SourceURL:      m.SourceURL,
			CreatedAt:      m.CreatedAt,
		}
	}
	return ds
}
