package utils

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var tomanFormatter = accounting.Accounting{Precision: 0, Thousand: ",", Decimal: "."}

// FormatToman renders a Toman amount as whole units with thousands separators.
// Example: 100000 returns "100,000"
func FormatToman(amount decimal.Decimal) string {
	return tomanFormatter.FormatMoneyDecimal(amount.Round(0))
}
