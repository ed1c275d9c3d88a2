package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"Zero", "0", "$0.00"},
		{"Cents", "0.5", "$0.50"},
		{"Hundreds", "856.07", "$856.07"},
		{"Thousands", "10272.9", "$10,272.90"},
		{"Millions", "1234567.891", "$1,234,567.89"},
		{"Negative", "-1234.56", "-$1,234.56"},
		{"Negative residue rounds to zero", "-0.001", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Errorf("Currency(%s) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyFloat(t *testing.T) {
	if got := CurrencyFloat(856.0748178846745); got != "$856.07" {
		t.Errorf("CurrencyFloat() = %q, expected $856.07", got)
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"272.8978", "272.90"},
		{"-50000", "-50,000.00"},
		{"999.999", "1,000.00"},
	}

	for _, tt := range tests {
		if got := NumericCurrency(decimal.RequireFromString(tt.amount)); got != tt.expected {
			t.Errorf("NumericCurrency(%s) = %q, expected %q", tt.amount, got, tt.expected)
		}
	}
}
