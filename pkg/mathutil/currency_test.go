package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Float residue", 1.3301360013429075e-11, 0.0},
		{"Negative residue", -4e-12, 0.0},
		{"Exactly one cent", 0.01, 0.01},
		{"Nearly two cents", 0.019, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsSettled(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Positive residue", 1e-11, true},
		{"Negative residue", -1e-11, true},
		{"Half a cent rounds up", 0.005, false},
		{"Below half a cent", 0.0049, true},
		{"One cent", 0.01, false},
		{"Full balance", 852.52, false},
		{"Overpaid", -3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSettled(tt.balance); got != tt.expected {
				t.Errorf("IsSettled(%v) = %v, expected %v", tt.balance, got, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Very small positive", 0.001, true},
		{"Very small negative", -0.001, true},
		{"Just above tolerance", 0.02, false},
		{"Exactly tolerance", 0.01, true},
		{"Large negative", -100.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsZero(tt.input)
			if result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(856.07) {
		t.Error("IsFinite(856.07) = false, expected true")
	}
	if IsFinite(math.NaN()) {
		t.Error("IsFinite(NaN) = true, expected false")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("IsFinite(±Inf) = true, expected false")
	}
}

func TestIsWhole(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		tolerance float64
		expected  bool
	}{
		{"Integer", 12, 1e-9, true},
		{"Float product", 2.5 * 12, 1e-9, true},
		{"Product with residue", 0.1 * 3 * 10, 1e-9, true},
		{"Fraction", 6.5, 1e-9, false},
		{"Half a week short", 51.5, 1e-9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWhole(tt.value, tt.tolerance); got != tt.expected {
				t.Errorf("IsWhole(%v, %v) = %v, expected %v", tt.value, tt.tolerance, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Equal values", 1.0, 1.0, 0.01, true},
		{"Within tolerance", 1.0, 1.005, 0.01, true},
		{"Outside tolerance", 1.0, 1.02, 0.01, false},
		{"Negative values within tolerance", -1.0, -1.005, 0.01, true},
		{"Zero tolerance equal", 1.0, 1.0, 0.0, true},
		{"Zero tolerance different", 1.0, 1.000001, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Interest share", 272.90, 10000, 2.729},
		{"Whole", 100, 100, 100},
		{"Zero total", 50, 0, 0},
		{"Zero value", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.value, tt.total)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestFromPercentage(t *testing.T) {
	if got := FromPercentage(5); math.Abs(got-0.05) > 1e-15 {
		t.Errorf("FromPercentage(5) = %v, expected 0.05", got)
	}
	if got := FromPercentage(0); got != 0 {
		t.Errorf("FromPercentage(0) = %v, expected 0", got)
	}
}
