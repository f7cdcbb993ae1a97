package models

import "github.com/shopspring/decimal"

// SettingsDocument is the JSONB document stored in plugin_settings.document.
// Keys are the plugin's option names.
type SettingsDocument struct {
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	CurrencyFrom   string          `json:"currency_from"`
	CurrencyTo     string          `json:"currency_to"`
	AutoUpdate     bool            `json:"auto_update"`
	UpdateInterval string          `json:"update_interval"`
	NavasanAPIKey  string          `json:"navasan_api_key"`
	NavasanItem    string          `json:"navasan_item"`
	CustomRates    string          `json:"custom_rates"`
	InterestMode   string          `json:"interest_mode"`
	InterestValue  decimal.Decimal `json:"interest_value"`
	FallbackMode   string          `json:"fallback_mode"`
}

// Settings is the single row of plugin_settings.
type Settings struct {
	Document SettingsDocument `db:"document"`
	AuditFields
}
