// Package frequency enumerates the payment and compounding frequencies a loan
// can be configured with, expressed as periods per year.
package frequency

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/amortize/pkg/constants"
)

// Frequency is a number of periods per year.
type Frequency int

// Recognized frequencies.
const (
	Annual      Frequency = 1
	SemiAnnual  Frequency = 2
	Quarterly   Frequency = 4
	BiMonthly   Frequency = 6
	Monthly     Frequency = 12
	SemiMonthly Frequency = 24
	BiWeekly    Frequency = 26
	Weekly      Frequency = 52
)

var all = []Frequency{Annual, SemiAnnual, Quarterly, BiMonthly, Monthly, SemiMonthly, BiWeekly, Weekly}

var names = map[Frequency]string{
	Annual:      "Annual",
	SemiAnnual:  "Semi-annual",
	Quarterly:   "Quarterly",
	BiMonthly:   "Bi-monthly",
	Monthly:     "Monthly",
	SemiMonthly: "Semi-monthly",
	BiWeekly:    "Bi-weekly",
	Weekly:      "Weekly",
}

// Option pairs a frequency with its display text.
type Option struct {
	Text  string    `json:"text" yaml:"text"`
	Value Frequency `json:"value" yaml:"value"`
}

// All returns every recognized frequency from least to most frequent.
func All() []Frequency {
	out := make([]Frequency, len(all))
	copy(out, all)
	return out
}

// Options returns the display options for every recognized frequency.
func Options() []Option {
	return optionsUpTo(Weekly)
}

// CompoundingOptions returns the compounding periods offered for a payment
// frequency: every recognized frequency that compounds no more often than
// payments are made.
func CompoundingOptions(payment Frequency) []Option {
	return optionsUpTo(payment)
}

func optionsUpTo(limit Frequency) []Option {
	options := make([]Option, 0, len(all))
	for _, f := range all {
		if f <= limit {
			options = append(options, Option{Text: f.String(), Value: f})
		}
	}
	return options
}

// DefaultCompounding returns the compounding period used when none is given:
// the payment frequency itself, capped at monthly.
func DefaultCompounding(payment Frequency) Frequency {
	if payment > constants.DefaultCompoundingCap {
		return constants.DefaultCompoundingCap
	}
	return payment
}

// IsRecognized reports whether f is one of the enumerated frequencies.
func (f Frequency) IsRecognized() bool {
	_, ok := names[f]
	return ok
}

// PerYear returns f as a float for use in rate math.
func (f Frequency) PerYear() float64 {
	return float64(f)
}

// String returns the display text, or the raw count for unrecognized values.
func (f Frequency) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return fmt.Sprintf("%d per year", int(f))
}

// Parse accepts a display name (case and separator insensitive, e.g.
// "bi-weekly", "biweekly", "Semi Monthly") or a positive count of periods
// per year.
func Parse(s string) (Frequency, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty frequency")
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("frequency must be positive, got %d", n)
		}
		return Frequency(n), nil
	}

	key := normalize(trimmed)
	for f, name := range names {
		if normalize(name) == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown frequency %q", s)
}

func normalize(s string) string {
	replacer := strings.NewReplacer("-", "", "_", "", " ", "")
	return strings.ToLower(replacer.Replace(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UnmarshalJSON accepts either a number or a name.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Frequency(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("frequency must be a number or a name: %w", err)
	}
	return f.UnmarshalText([]byte(s))
}
