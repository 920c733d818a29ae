package pricing

import "math"

// Discount formula constants: the discount grows linearly with the
// utilization shortfall, floored at 10% and capped at 35%.
const (
	DISCOUNT_FLOOR = 0.10
	DISCOUNT_SLOPE = 0.20
	DISCOUNT_CAP   = 0.35
)

// Gap is the shortfall between the target and the expected utilization,
// clamped at zero.
func Gap(expectedUtil, targetUtil float64) float64 {
	g := targetUtil - expectedUtil
	if g < 0 {
		return 0
	}
	return g
}

// Resolve maps an expected utilization and a current price to a suggested
// discount and new price. This is the single pricing formula shared by the
// rule-based and model-based paths: equal expected utilizations always yield
// equal discounts, no matter which signal produced them.
func Resolve(expectedUtil, avgPrice, targetUtil float64) (discount, newPrice float64) {
	gap := Gap(expectedUtil, targetUtil)
	discount = DISCOUNT_FLOOR + DISCOUNT_SLOPE*(gap/targetUtil)
	if discount > DISCOUNT_CAP {
		discount = DISCOUNT_CAP
	}
	newPrice = avgPrice * (1 - discount)
	return discount, newPrice
}

// Round2 rounds a currency value to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
