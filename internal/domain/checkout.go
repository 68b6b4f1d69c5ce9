package domain

import "github.com/shopspring/decimal"

// MinorUnits converts a decimal currency amount to the payment provider's
// integer minor-unit representation, rounding half away from zero. 19.995
// becomes 2000, not 1999.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

// ClampQuantity raises non-positive cart quantities to 1. There is no upper
// bound; the shop has no stock model.
func ClampQuantity(quantity int64) int64 {
	if quantity < 1 {
		return 1
	}
	return quantity
}
