package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// TargetCurrency is the only currency conversions produce.
	TargetCurrency = "IRT"
	// SubunitCurrency is the Rial; one Rial is a tenth of a Toman.
	SubunitCurrency = "IRR"
	// DefaultBaseCurrency is assumed for records without a currency.
	DefaultBaseCurrency = "USD"
	// DefaultRemoteItem is the rate service item used for USD when none is configured.
	DefaultRemoteItem = "usd_sell"
)

// SubunitRate is the Toman value of one Rial.
var SubunitRate = decimal.New(1, -1)

// FallbackMode is the kill switch for price substitution.
type FallbackMode string

const (
	FallbackEnabled  FallbackMode = "enabled"
	FallbackDisabled FallbackMode = "disabled"
)

// Settings is the persisted plugin configuration, stored as one JSON document.
// JSON keys match the option names the admin screen writes.
type Settings struct {
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	CurrencyFrom   string          `json:"currency_from"`
	CurrencyTo     string          `json:"currency_to"`
	AutoUpdate     bool            `json:"auto_update"`
	UpdateInterval string          `json:"update_interval"`
	NavasanAPIKey  string          `json:"navasan_api_key"`
	NavasanItem    string          `json:"navasan_item"`
	CustomRates    string          `json:"custom_rates"`
	InterestMode   MarkupMode      `json:"interest_mode"`
	InterestValue  decimal.Decimal `json:"interest_value"`
	FallbackMode   FallbackMode    `json:"fallback_mode"`
	AuditFields
}

// DefaultSettings mirrors the options created when the plugin is first activated.
func DefaultSettings() Settings {
	return Settings{
		ExchangeRate:   decimal.NewFromInt(1),
		CurrencyFrom:   DefaultBaseCurrency,
		CurrencyTo:     TargetCurrency,
		UpdateInterval: "daily",
		NavasanItem:    DefaultRemoteItem,
		InterestMode:   MarkupNone,
		InterestValue:  decimal.Zero,
		FallbackMode:   FallbackEnabled,
	}
}

// RateSettings is the read-only snapshot every pricing operation receives.
// Build it once per request with Settings.Snapshot.
type RateSettings struct {
	ExchangeRate  decimal.Decimal
	StaticRates   map[string]decimal.Decimal
	APIKey        string
	RemoteItem    string
	Markup        MarkupRule
	FallbackMode  FallbackMode
	StoreCurrency string
}

// Snapshot converts persisted settings into a RateSettings. A custom rate
// table that cannot be parsed is dropped from the snapshot and reported as an
// ErrMalformedConfiguration; the snapshot is still usable.
func (s Settings) Snapshot(storeCurrency string) (RateSettings, error) {
	rs := RateSettings{
		ExchangeRate:  s.ExchangeRate,
		APIKey:        strings.TrimSpace(s.NavasanAPIKey),
		RemoteItem:    strings.TrimSpace(s.NavasanItem),
		Markup:        MarkupRule{Mode: s.InterestMode, Value: s.InterestValue},
		FallbackMode:  s.FallbackMode,
		StoreCurrency: NormalizeCurrency(storeCurrency),
	}
	if rs.RemoteItem == "" {
		rs.RemoteItem = DefaultRemoteItem
	}
	if rs.StoreCurrency == "" {
		rs.StoreCurrency = DefaultBaseCurrency
	}
	if rs.Markup.Mode == "" || rs.Markup.Mode == MarkupInherit {
		rs.Markup.Mode = MarkupNone
	}

	rates, err := ParseStaticRates(s.CustomRates)
	rs.StaticRates = rates
	return rs, err
}

// PriceOverrideEnabled reports whether the kill switch allows substitution.
func (s RateSettings) PriceOverrideEnabled() bool {
	return s.FallbackMode != FallbackDisabled
}

// StaticRate returns the static table rate for code when it is positive.
func (s RateSettings) StaticRate(code string) (decimal.Decimal, bool) {
	rate, ok := s.StaticRates[NormalizeCurrency(code)]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// FlatRate is the terminal fallback: the configured rate, or 1.
func (s RateSettings) FlatRate() decimal.Decimal {
	if s.ExchangeRate.IsPositive() {
		return s.ExchangeRate
	}
	return decimal.NewFromInt(1)
}

// NormalizeCurrency trims and uppercases a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseStaticRates decodes the custom rate table, a JSON object of
// currency code to Toman per unit. Values may be numbers or numeric strings.
// Entries that are not positive are skipped.
func ParseStaticRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return rates, nil
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return rates, fmt.Errorf("%w: custom rates: %v", apperrors.ErrMalformedConfiguration, err)
	}

	for code, value := range decoded {
		rate, ok := ParseLooseDecimal(strings.Trim(string(value), `"`))
		if !ok || !rate.IsPositive() {
			continue
		}
		rates[NormalizeCurrency(code)] = rate
	}
	return rates, nil
}

// ParseLooseDecimal parses a number that may carry thousands separators.
func ParseLooseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
