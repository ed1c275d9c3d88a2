package config

import (
	"github.com/iwvelando/amortize/pkg/amortization"
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
)

// Loan indicates a loan and its parameters.
type Loan struct {
	Name                 string              `yaml:"name"`
	Principal            float64             `yaml:"principal"`
	AnnualRate           float64             `yaml:"annualRate"` // percent
	TermYears            float64             `yaml:"termYears"`
	PaymentFrequency     frequency.Frequency `yaml:"paymentFrequency"`
	CompoundingFrequency frequency.Frequency `yaml:"compoundingFrequency,omitempty"`
}

// DefaultLoan returns the loan used when the configuration lists none.
func DefaultLoan() Loan {
	terms := amortization.DefaultTerms()
	return Loan{
		Name:                 constants.DefaultLoanName,
		Principal:            terms.Principal,
		AnnualRate:           terms.AnnualRatePercent,
		TermYears:            terms.TermYears,
		PaymentFrequency:     terms.PaymentFrequency,
		CompoundingFrequency: terms.CompoundingFrequency,
	}
}

// Terms converts the configured loan into engine inputs.
func (loan Loan) Terms() amortization.LoanTerms {
	return amortization.LoanTerms{
		Principal:            loan.Principal,
		AnnualRatePercent:    loan.AnnualRate,
		CompoundingFrequency: loan.CompoundingFrequency,
		PaymentFrequency:     loan.PaymentFrequency,
		TermYears:            loan.TermYears,
	}
}
