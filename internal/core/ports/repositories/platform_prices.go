package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// PlatformPrices reads the e-commerce platform's own stored prices.
//
// On the platform these reads go through the same price getters the display
// override hooks into, so an implementation may call back into
// PriceOverrideSvc with the caller's context.
type PlatformPrices interface {
	RegularPrice(ctx context.Context, productID int64) (decimal.Decimal, error)
}
