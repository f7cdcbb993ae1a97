package services

import (
	"github.com/emjayi/price_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyMarkup adjusts a converted amount by rule. Percent and fixed rules
// with a non-positive value are no-ops. The result is never negative, and a
// failure inside the calculation yields the amount unchanged.
func ApplyMarkup(amount decimal.Decimal, rule domain.MarkupRule) (result decimal.Decimal) {
	defer func() {
		if rec := recover(); rec != nil {
			result = amount
		}
	}()

	result = amount
	if amount.IsPositive() && rule.Value.IsPositive() {
		switch rule.Mode {
		case domain.MarkupPercent:
			result = amount.Mul(decimal.NewFromInt(1).Add(rule.Value.Div(hundred)))
		case domain.MarkupFixed:
			result = amount.Add(rule.Value)
		}
	}

	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// ResolveMarkupScope picks the markup rule that applies to an entity: its own
// explicit rule, else its parent's explicit rule, else the global default.
// When none of them is explicit no markup applies.
func ResolveMarkupScope(own, parent, global domain.MarkupRule) domain.MarkupRule {
	for _, rule := range []domain.MarkupRule{own, parent, global} {
		if rule.IsExplicit() {
			return rule
		}
	}
	return domain.MarkupRule{Mode: domain.MarkupNone}
}
