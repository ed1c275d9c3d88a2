// Package amortization computes fixed-payment loan amortization schedules:
// the effective rate per payment period, the periodic payment, and the
// row-by-row split of each payment into interest and principal.
//
// Calculations are from http://www.vertex42.com/ExcelArticles/amortization-calculation.html
package amortization

import (
	"math"

	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/iwvelando/amortize/pkg/mathutil"
)

// PeriodRate converts a nominal annual rate in percent, compounded
// compounding times per year, into the effective rate applied once per
// payment period:
//
//	r = (1 + annualRate/compounding)^(compounding/payment) - 1
//
// Both frequencies must be positive; zero values yield Inf or NaN.
func PeriodRate(annualRatePercent float64, compounding, payment frequency.Frequency) float64 {
	perCompounding := mathutil.FromPercentage(annualRatePercent) / compounding.PerYear()
	if compounding == payment {
		// The exponent is 1.
		return perCompounding
	}
	return math.Expm1(compounding.PerYear() / payment.PerYear() * math.Log1p(perCompounding))
}
