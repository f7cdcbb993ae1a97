package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MarkupMode selects how a converted amount is adjusted.
type MarkupMode string

const (
	MarkupInherit MarkupMode = "inherit"
	MarkupNone    MarkupMode = "none"
	MarkupPercent MarkupMode = "percent"
	MarkupFixed   MarkupMode = "fixed"
)

// ParseMarkupMode accepts a mode name in any case. An empty string is inherit.
func ParseMarkupMode(s string) (MarkupMode, bool) {
	switch MarkupMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MarkupInherit:
		return MarkupInherit, true
	case MarkupNone:
		return MarkupNone, true
	case MarkupPercent:
		return MarkupPercent, true
	case MarkupFixed:
		return MarkupFixed, true
	}
	return "", false
}

// MarkupRule is a mode and its value at one scope (entity, parent or global).
type MarkupRule struct {
	Mode  MarkupMode      `json:"mode"`
	Value decimal.Decimal `json:"value"`
}

// IsExplicit reports whether the rule decides the markup itself rather than
// deferring to an outer scope.
func (r MarkupRule) IsExplicit() bool {
	switch r.Mode {
	case MarkupNone, MarkupPercent, MarkupFixed:
		return true
	}
	return false
}
