// Package format renders monetary values for display.
package format

import (
	"strings"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount decimal.Decimal) string {
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		return "-$" + formatPositiveCurrency(amount.Abs())
	}
	return "$" + formatPositiveCurrency(amount.Abs())
}

// CurrencyFloat is Currency for float64 amounts.
func CurrencyFloat(amount float64) string {
	return Currency(decimal.NewFromFloat(amount))
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.Round(constants.CurrencyPlaces).IsNegative() {
		sign = "-"
	}
	return sign + formatPositiveCurrency(amount.Abs())
}

func formatPositiveCurrency(value decimal.Decimal) string {
	intPart, decPart, _ := strings.Cut(value.StringFixed(constants.CurrencyPlaces), ".")

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
