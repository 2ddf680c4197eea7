package pricing

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.New(5, -1)
)

// Charges holds the monetary figures of a rental, each rounded to the cent
type Charges struct {
	PreDiscount decimal.Decimal
	Discount    decimal.Decimal
	Final       decimal.Decimal
}

// CurrencyRound rounds amount to the nearest cent, halves going up
// (toward positive infinity): 5.125 -> 5.13, -5.125 -> -5.12.
func CurrencyRound(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(2).Add(half).Floor().Shift(-2)
}

// Compute prices a rental of chargeDays at dailyRate with a whole-number
// discount percent. Every figure is rounded before it feeds the next one.
func Compute(dailyRate decimal.Decimal, chargeDays, discountPercent int) Charges {
	preDiscount := CurrencyRound(dailyRate.Mul(decimal.NewFromInt(int64(chargeDays))))
	discount := CurrencyRound(preDiscount.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred))
	final := CurrencyRound(preDiscount.Sub(discount))

	return Charges{
		PreDiscount: preDiscount,
		Discount:    discount,
		Final:       final,
	}
}
