package pricing

import (
	"github.com/shopspring/decimal"
)

// priceScale is the number of decimals kept when comparing stored prices.
const priceScale = 6

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ApplyPercent returns price * (1 + percent/100).
func ApplyPercent(price, percent float64) float64 {
	return decimal.NewFromFloat(price).Mul(percentMultiplier(percent)).InexactFloat64()
}

// SamePrice reports whether two prices are equal at storage precision.
func SamePrice(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(priceScale).Equal(decimal.NewFromFloat(b).Round(priceScale))
}

// HasAtMostTwoDecimals reports whether v carries no more than two decimal digits.
func HasAtMostTwoDecimals(v float64) bool {
	return decimal.NewFromFloat(v).Exponent() >= -2
}

func percentMultiplier(percent float64) decimal.Decimal {
	return one.Add(decimal.NewFromFloat(percent).Div(hundred))
}
