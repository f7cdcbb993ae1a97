package mapping

import (
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/emjayi/price_converter/internal/models"
)

// ToModelSettings converts domain Settings to the stored row
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		Document: models.SettingsDocument{
			ExchangeRate:   d.ExchangeRate,
			CurrencyFrom:   d.CurrencyFrom,
			CurrencyTo:     d.CurrencyTo,
			AutoUpdate:     d.AutoUpdate,
			UpdateInterval: d.UpdateInterval,
			NavasanAPIKey:  d.NavasanAPIKey,
			NavasanItem:    d.NavasanItem,
			CustomRates:    d.CustomRates,
			InterestMode:   string(d.InterestMode),
			InterestValue:  d.InterestValue,
			FallbackMode:   string(d.FallbackMode),
		},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSettings converts the stored row to domain Settings. Keys missing
// from older documents take their default values.
func ToDomainSettings(m models.Settings) domain.Settings {
	d := domain.DefaultSettings()
	doc := m.Document

	d.ExchangeRate = doc.ExchangeRate
	d.AutoUpdate = doc.AutoUpdate
	d.NavasanAPIKey = doc.NavasanAPIKey
	d.CustomRates = doc.CustomRates
	d.InterestValue = doc.InterestValue
	if doc.CurrencyFrom != "" {
		d.CurrencyFrom = doc.CurrencyFrom
	}
	if doc.CurrencyTo != "" {
		d.CurrencyTo = doc.CurrencyTo
	}
	if doc.UpdateInterval != "" {
		d.UpdateInterval = doc.UpdateInterval
	}
	if doc.NavasanItem != "" {
		d.NavasanItem = doc.NavasanItem
	}
	if mode, ok := domain.ParseMarkupMode(doc.InterestMode); ok && mode != domain.MarkupInherit {
		d.InterestMode = mode
	}
	if doc.FallbackMode == string(domain.FallbackDisabled) {
		d.FallbackMode = domain.FallbackDisabled
	}
	d.AuditFields = ToDomainAuditFields(m.AuditFields)
	return d
}
