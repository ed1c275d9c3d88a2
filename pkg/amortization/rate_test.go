package amortization

import (
	"math"
	"testing"

	"github.com/iwvelando/amortize/pkg/frequency"
)

func TestPeriodRate(t *testing.T) {
	tests := []struct {
		name        string
		annualRate  float64
		compounding frequency.Frequency
		payment     frequency.Frequency
		expected    float64
	}{
		{
			name:        "Monthly compounding, monthly payments",
			annualRate:  5.0,
			compounding: frequency.Monthly,
			payment:     frequency.Monthly,
			expected:    0.05 / 12,
		},
		{
			name:        "Quarterly compounding, monthly payments",
			annualRate:  6.0,
			compounding: frequency.Quarterly,
			payment:     frequency.Monthly,
			expected:    math.Pow(1.015, 1.0/3.0) - 1, // ~0.0049752
		},
		{
			name:        "Monthly compounding, weekly payments",
			annualRate:  5.0,
			compounding: frequency.Monthly,
			payment:     frequency.Weekly,
			expected:    0.0009600013100943272,
		},
		{
			name:        "Annual compounding, annual payments",
			annualRate:  7.5,
			compounding: frequency.Annual,
			payment:     frequency.Annual,
			expected:    0.075,
		},
		{
			name:        "Weekly compounding, monthly payments",
			annualRate:  5.0,
			compounding: frequency.Weekly,
			payment:     frequency.Monthly,
			expected:    math.Pow(1+0.05/52, 52.0/12.0) - 1,
		},
		{
			name:        "Zero interest",
			annualRate:  0.0,
			compounding: frequency.Quarterly,
			payment:     frequency.Monthly,
			expected:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PeriodRate(tt.annualRate, tt.compounding, tt.payment)
			if math.Abs(result-tt.expected) > 1e-15 {
				t.Errorf("PeriodRate() = %.17g, expected %.17g", result, tt.expected)
			}
		})
	}
}

func TestPeriodRateMatchingFrequenciesIsSimpleDivision(t *testing.T) {
	for _, f := range frequency.All() {
		for _, rate := range []float64{0, 0.5, 3.25, 5, 18.99} {
			got := PeriodRate(rate, f, f)
			want := rate / 100 / float64(f)
			if got != want {
				t.Errorf("PeriodRate(%v, %d, %d) = %.17g, expected exactly %.17g", rate, f, f, got, want)
			}
		}
	}
}

func TestPeriodRateZeroInterestIsExactlyZero(t *testing.T) {
	for _, compounding := range frequency.All() {
		for _, payment := range frequency.All() {
			if got := PeriodRate(0, compounding, payment); got != 0 {
				t.Errorf("PeriodRate(0, %d, %d) = %v, expected 0", compounding, payment, got)
			}
		}
	}
}

func TestPeriodRateEffectiveAnnualRateIsPreserved(t *testing.T) {
	// Compounding the period rate over a year gives the same effective annual
	// rate whatever the payment frequency.
	effective := math.Pow(1+0.06/4, 4) - 1
	for _, payment := range frequency.All() {
		r := PeriodRate(6, frequency.Quarterly, payment)
		got := math.Pow(1+r, float64(payment)) - 1
		if math.Abs(got-effective) > 1e-12 {
			t.Errorf("effective annual rate at %s payments = %.12f, expected %.12f", payment, got, effective)
		}
	}
}

func TestPeriodRateZeroFrequencyIsNotFinite(t *testing.T) {
	r := PeriodRate(5, 0, frequency.Monthly)
	if !math.IsNaN(r) && !math.IsInf(r, 0) {
		t.Errorf("PeriodRate with zero compounding = %v, expected NaN or Inf", r)
	}
}
