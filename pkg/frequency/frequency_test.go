package frequency

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Frequency
		expectErr bool
	}{
		{"Numeric monthly", "12", Monthly, false},
		{"Numeric weekly with spaces", " 52 ", Weekly, false},
		{"Name", "Quarterly", Quarterly, false},
		{"Lower case hyphenated", "bi-weekly", BiWeekly, false},
		{"Collapsed", "semimonthly", SemiMonthly, false},
		{"Spaced", "Semi annual", SemiAnnual, false},
		{"Unrecognized count is accepted", "3", Frequency(3), false},
		{"Zero", "0", 0, true},
		{"Negative", "-12", 0, true},
		{"Empty", "", 0, true},
		{"Unknown name", "fortnightly", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	options := Options()
	if len(options) != 8 {
		t.Fatalf("expected 8 options, got %d", len(options))
	}
	expected := []struct {
		text  string
		value Frequency
	}{
		{"Annual", 1}, {"Semi-annual", 2}, {"Quarterly", 4}, {"Bi-monthly", 6},
		{"Monthly", 12}, {"Semi-monthly", 24}, {"Bi-weekly", 26}, {"Weekly", 52},
	}
	for i, want := range expected {
		if options[i].Text != want.text || options[i].Value != want.value {
			t.Errorf("option %d = %+v, expected {%s %d}", i, options[i], want.text, want.value)
		}
	}
}

func TestCompoundingOptions(t *testing.T) {
	tests := []struct {
		payment  Frequency
		expected int
		last     Frequency
	}{
		{Annual, 1, Annual},
		{Quarterly, 3, Quarterly},
		{Monthly, 5, Monthly},
		{BiWeekly, 7, BiWeekly},
		{Weekly, 8, Weekly},
	}

	for _, tt := range tests {
		t.Run(tt.payment.String(), func(t *testing.T) {
			options := CompoundingOptions(tt.payment)
			if len(options) != tt.expected {
				t.Fatalf("CompoundingOptions(%d) returned %d options, expected %d", tt.payment, len(options), tt.expected)
			}
			if options[len(options)-1].Value != tt.last {
				t.Errorf("last option = %d, expected %d", options[len(options)-1].Value, tt.last)
			}
		})
	}
}

func TestDefaultCompounding(t *testing.T) {
	tests := []struct {
		payment  Frequency
		expected Frequency
	}{
		{Annual, Annual},
		{BiMonthly, BiMonthly},
		{Monthly, Monthly},
		{SemiMonthly, Monthly},
		{Weekly, Monthly},
	}

	for _, tt := range tests {
		if got := DefaultCompounding(tt.payment); got != tt.expected {
			t.Errorf("DefaultCompounding(%d) = %d, expected %d", tt.payment, got, tt.expected)
		}
	}
}

func TestString(t *testing.T) {
	if Monthly.String() != "Monthly" {
		t.Errorf("Monthly.String() = %q", Monthly.String())
	}
	if Frequency(3).String() != "3 per year" {
		t.Errorf("Frequency(3).String() = %q", Frequency(3).String())
	}
	if Frequency(3).IsRecognized() {
		t.Error("Frequency(3) should not be recognized")
	}
	if !BiWeekly.IsRecognized() {
		t.Error("BiWeekly should be recognized")
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var payload struct {
		Payment     Frequency `json:"payment"`
		Compounding Frequency `json:"compounding"`
	}
	if err := json.Unmarshal([]byte(`{"payment": "weekly", "compounding": 4}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Payment != Weekly {
		t.Errorf("payment = %d, expected %d", payload.Payment, Weekly)
	}
	if payload.Compounding != Quarterly {
		t.Errorf("compounding = %d, expected %d", payload.Compounding, Quarterly)
	}

	var f Frequency
	if err := json.Unmarshal([]byte(`"yearly-ish"`), &f); err == nil {
		t.Error("expected error for unknown frequency name")
	}
	if err := json.Unmarshal([]byte(`true`), &f); err == nil {
		t.Error("expected error for boolean frequency")
	}
}
