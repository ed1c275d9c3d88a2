package amortization

import (
	"math"
	"testing"
)

func TestPaymentAmount(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		periodRate    float64
		numPeriods    int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "One year at 5% monthly",
			principal:     10000,
			periodRate:    0.05 / 12,
			numPeriods:    12,
			expectedRange: []float64{856.07, 856.08}, // 856.0748
		},
		{
			name:          "Standard 30-year mortgage",
			principal:     240000,
			periodRate:    0.06 / 12,
			numPeriods:    360,
			expectedRange: []float64{1438, 1440}, // Around $1438.92
		},
		{
			name:          "5-year car loan",
			principal:     20000,
			periodRate:    0.04 / 12,
			numPeriods:    60,
			expectedRange: []float64{368, 369}, // Around $368.33
		},
		{
			name:          "High interest loan",
			principal:     10000,
			periodRate:    0.18 / 12,
			numPeriods:    36,
			expectedRange: []float64{361, 362}, // Around $361.52
		},
		{
			name:          "Single period",
			principal:     1000,
			periodRate:    0.1,
			numPeriods:    1,
			expectedRange: []float64{1100, 1100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PaymentAmount(tt.principal, tt.periodRate, tt.numPeriods)

			if result < tt.expectedRange[0]-1e-9 || result > tt.expectedRange[1]+1e-9 {
				t.Errorf("PaymentAmount() = %.4f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestPaymentAmountZeroInterestIsStraightLine(t *testing.T) {
	tests := []struct {
		principal  float64
		numPeriods int
	}{
		{12000, 60},
		{10000, 12},
		{1000, 52},
		{999.99, 7},
	}

	for _, tt := range tests {
		if got, want := PaymentAmount(tt.principal, 0, tt.numPeriods), tt.principal/float64(tt.numPeriods); got != want {
			t.Errorf("PaymentAmount(%v, 0, %d) = %v, expected exactly %v", tt.principal, tt.numPeriods, got, want)
		}
	}
}

func TestPaymentAmountRetiresPrincipal(t *testing.T) {
	// Discounting every payment back to the start must give the principal.
	principal, rate, n := 25000.0, 0.0045, 84
	payment := PaymentAmount(principal, rate, n)

	presentValue := 0.0
	for k := 1; k <= n; k++ {
		presentValue += payment / math.Pow(1+rate, float64(k))
	}
	if math.Abs(presentValue-principal) > 1e-6 {
		t.Errorf("present value of payments = %.6f, expected %.2f", presentValue, principal)
	}
}

func TestPaymentAmountZeroPeriodsIsNotFinite(t *testing.T) {
	if got := PaymentAmount(1000, 0, 0); !math.IsInf(got, 1) {
		t.Errorf("PaymentAmount(1000, 0, 0) = %v, expected +Inf", got)
	}
	if got := PaymentAmount(1000, 0.01, 0); !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("PaymentAmount(1000, 0.01, 0) = %v, expected NaN or Inf", got)
	}
}
