package amortization

import (
	"fmt"
	"math"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/iwvelando/amortize/pkg/mathutil"
	"go.uber.org/multierr"
)

// LoanTerms are the inputs of an amortization calculation.
// A zero CompoundingFrequency selects frequency.DefaultCompounding.
type LoanTerms struct {
	Principal            float64             `json:"principal" yaml:"principal"`
	AnnualRatePercent    float64             `json:"annualRate" yaml:"annualRate"`
	CompoundingFrequency frequency.Frequency `json:"compoundingFrequency,omitempty" yaml:"compoundingFrequency,omitempty"`
	PaymentFrequency     frequency.Frequency `json:"paymentFrequency" yaml:"paymentFrequency"`
	TermYears            float64             `json:"termYears" yaml:"termYears"`
}

// DefaultTerms returns the terms a new calculation starts from.
func DefaultTerms() LoanTerms {
	return LoanTerms{
		Principal:            constants.DefaultPrincipal,
		AnnualRatePercent:    constants.DefaultAnnualRatePercent,
		CompoundingFrequency: frequency.DefaultCompounding(constants.DefaultPaymentFrequency),
		PaymentFrequency:     constants.DefaultPaymentFrequency,
		TermYears:            constants.DefaultTermYears,
	}
}

// WithDefaults fills in the compounding frequency when it is unset.
func (t LoanTerms) WithDefaults() LoanTerms {
	if t.CompoundingFrequency == 0 {
		t.CompoundingFrequency = frequency.DefaultCompounding(t.PaymentFrequency)
	}
	return t
}

// NumPeriods returns the number of payments over the term.
func (t LoanTerms) NumPeriods() int {
	return int(math.Round(t.TermYears * t.PaymentFrequency.PerYear()))
}

// Validate checks the terms before they reach the engine. Every problem
// found is reported; the returned error matches ErrInvalidLoanTerms.
func (t LoanTerms) Validate() error {
	t = t.WithDefaults()

	var errs error
	if !mathutil.IsFinite(t.Principal) || t.Principal <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("principal must be a positive amount, got %v", t.Principal))
	}
	if !mathutil.IsFinite(t.AnnualRatePercent) || t.AnnualRatePercent < 0 {
		errs = multierr.Append(errs, fmt.Errorf("annual rate must not be negative, got %v", t.AnnualRatePercent))
	}
	if t.PaymentFrequency <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("payment frequency must be positive, got %d", t.PaymentFrequency))
	}
	if t.CompoundingFrequency <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("compounding frequency must be positive, got %d", t.CompoundingFrequency))
	}
	if !mathutil.IsFinite(t.TermYears) || t.TermYears <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("term must be a positive number of years, got %v", t.TermYears))
	} else if t.PaymentFrequency > 0 {
		periods := t.TermYears * t.PaymentFrequency.PerYear()
		switch {
		case !mathutil.IsWhole(periods, constants.PeriodTolerance):
			errs = multierr.Append(errs, fmt.Errorf("term of %v years at %d payments per year is not a whole number of payments (%v)",
				t.TermYears, t.PaymentFrequency, periods))
		case t.NumPeriods() < 1:
			errs = multierr.Append(errs, fmt.Errorf("term of %v years has no payments", t.TermYears))
		case t.NumPeriods() > constants.MaxScheduleRows:
			errs = multierr.Append(errs, fmt.Errorf("term of %v years needs %d payments, more than the limit of %d",
				t.TermYears, t.NumPeriods(), constants.MaxScheduleRows))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoanTerms, errs)
	}
	return nil
}

// Warnings returns non-fatal observations about the terms.
func (t LoanTerms) Warnings() []string {
	t = t.WithDefaults()

	var warnings []string
	if t.PaymentFrequency > 0 && !t.PaymentFrequency.IsRecognized() {
		warnings = append(warnings, fmt.Sprintf("payment frequency %d is not a standard frequency", t.PaymentFrequency))
	}
	if t.CompoundingFrequency > 0 && !t.CompoundingFrequency.IsRecognized() {
		warnings = append(warnings, fmt.Sprintf("compounding frequency %d is not a standard frequency", t.CompoundingFrequency))
	}
	if t.CompoundingFrequency > t.PaymentFrequency && t.PaymentFrequency > 0 {
		warnings = append(warnings, fmt.Sprintf("compounding (%s) is more frequent than payments (%s)",
			t.CompoundingFrequency, t.PaymentFrequency))
	}
	return warnings
}
