package amortization

import "math"

// PaymentAmount returns the fixed periodic payment that retires principal
// over numPeriods payments at periodRate:
//
//	A = P * r(1+r)^n / ((1+r)^n - 1)
//
// A zero rate pays the principal off in equal parts. numPeriods must be
// positive.
func PaymentAmount(principal, periodRate float64, numPeriods int) float64 {
	return paymentAmount(principal, periodRate, float64(numPeriods))
}

func paymentAmount(principal, periodRate, numPeriods float64) float64 {
	if periodRate == 0 {
		return principal / numPeriods
	}

	factor := math.Pow(1+periodRate, numPeriods)
	return principal * ((periodRate * factor) / (factor - 1))
}
