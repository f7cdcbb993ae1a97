package dto

import (
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the settings an admin may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateSettingsRequest struct {
	ExchangeRate   *decimal.Decimal `json:"exchange_rate"`
	CurrencyFrom   *string          `json:"currency_from" binding:"omitempty,currency_code"`
	CurrencyTo     *string          `json:"currency_to" binding:"omitempty,currency_code"`
	AutoUpdate     *bool            `json:"auto_update"`
	UpdateInterval *string          `json:"update_interval" binding:"omitempty,oneof=hourly twicedaily daily"`
	NavasanAPIKey  *string          `json:"navasan_api_key"`
	NavasanItem    *string          `json:"navasan_item"`
	CustomRates    *string          `json:"custom_rates"`
	InterestMode   *string          `json:"interest_mode" binding:"omitempty,markup_mode"`
	InterestValue  *decimal.Decimal `json:"interest_value"`
	FallbackMode   *string          `json:"fallback_mode" binding:"omitempty,oneof=enabled disabled"`
}

// SettingsResponse is the persisted settings with the API key masked.
type SettingsResponse struct {
	ExchangeRate   decimal.Decimal     `json:"exchange_rate"`
	CurrencyFrom   string              `json:"currency_from"`
	CurrencyTo     string              `json:"currency_to"`
	AutoUpdate     bool                `json:"auto_update"`
	UpdateInterval string              `json:"update_interval"`
	APIKeySet      bool                `json:"navasan_api_key_set"`
	NavasanItem    string              `json:"navasan_item"`
	CustomRates    string              `json:"custom_rates"`
	InterestMode   domain.MarkupMode   `json:"interest_mode"`
	InterestValue  decimal.Decimal     `json:"interest_value"`
	FallbackMode   domain.FallbackMode `json:"fallback_mode"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		ExchangeRate:   s.ExchangeRate,
		CurrencyFrom:   s.CurrencyFrom,
		CurrencyTo:     s.CurrencyTo,
		AutoUpdate:     s.AutoUpdate,
		UpdateInterval: s.UpdateInterval,
		APIKeySet:      s.NavasanAPIKey != "",
		NavasanItem:    s.NavasanItem,
		CustomRates:    s.CustomRates,
		InterestMode:   s.InterestMode,
		InterestValue:  s.InterestValue,
		FallbackMode:   s.FallbackMode,
	}
}
