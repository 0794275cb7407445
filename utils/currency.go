package utils

import (
	"github.com/shopspring/decimal"
)

// Money rounds v to cents.
func Money(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// LineTotal returns price * quantity rounded to cents.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return Money(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))))
}

// ToFloat converts a cent-rounded decimal back to float64 for JSON payloads.
func ToFloat(v decimal.Decimal) float64 {
	f, _ := Money(v).Float64()
	return f
}

// FormatCurrency formats an amount the way the site prints prices.
// Example: 16.5 -> "16.50 $"
func FormatCurrency(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2) + " $"
}
