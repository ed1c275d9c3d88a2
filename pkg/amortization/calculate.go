package amortization

import (
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/frequency"
	"github.com/iwvelando/amortize/pkg/mathutil"
)

// Summary holds the aggregate cost of a loan.
type Summary struct {
	TotalPayment         float64 `json:"totalPayment" yaml:"totalPayment"`
	TotalInterest        float64 `json:"totalInterest" yaml:"totalInterest"`
	TotalInterestPercent float64 `json:"totalInterestPercent" yaml:"totalInterestPercent"`
}

// Comparison sets a payment plan against paying the same loan monthly.
type Comparison struct {
	// MonthlyAmount is the payment the loan would need at monthly frequency.
	MonthlyAmount float64 `json:"monthlyAmount" yaml:"monthlyAmount"`
	// MonthlyEquivalent is the actual payment spread over a month.
	MonthlyEquivalent float64 `json:"monthlyEquivalent" yaml:"monthlyEquivalent"`
	// SavingsPerYear is positive when the plan costs less per year than
	// paying monthly.
	SavingsPerYear float64 `json:"savingsPerYear" yaml:"savingsPerYear"`
}

// Result is a complete calculation for one set of LoanTerms.
type Result struct {
	Terms         LoanTerms
	FrequencyText string
	NumPeriods    int
	PeriodRate    float64
	PaymentAmount float64
	Schedule      Schedule
	Summary       Summary
	Comparison    Comparison
}

// Summarize derives the totals from the regular payment amount.
func Summarize(paymentAmount float64, numPeriods int, principal float64) Summary {
	totalPayment := paymentAmount * float64(numPeriods)
	totalInterest := totalPayment - principal
	return Summary{
		TotalPayment:         totalPayment,
		TotalInterest:        totalInterest,
		TotalInterestPercent: mathutil.CalculatePercentage(totalInterest, principal),
	}
}

// CompareMonthly recomputes the loan at monthly frequency, keeping its
// compounding period, and compares that with payment.
func CompareMonthly(terms LoanTerms, payment float64) Comparison {
	terms = terms.WithDefaults()

	monthlyRate := PeriodRate(terms.AnnualRatePercent, terms.CompoundingFrequency, frequency.Monthly)
	monthlyPeriods := terms.TermYears * constants.MonthsPerYear
	monthlyAmount := paymentAmount(terms.Principal, monthlyRate, monthlyPeriods)
	monthlyEquivalent := payment * terms.PaymentFrequency.PerYear() / constants.MonthsPerYear

	return Comparison{
		MonthlyAmount:     monthlyAmount,
		MonthlyEquivalent: monthlyEquivalent,
		SavingsPerYear:    (monthlyAmount - monthlyEquivalent) * constants.MonthsPerYear,
	}
}

// Calculate validates terms and derives the payment, schedule, summary and
// monthly comparison from them. It holds no state; call it again whenever
// an input changes.
func Calculate(terms LoanTerms) (Result, error) {
	if err := terms.Validate(); err != nil {
		return Result{}, err
	}
	terms = terms.WithDefaults()

	numPeriods := terms.NumPeriods()
	periodRate := PeriodRate(terms.AnnualRatePercent, terms.CompoundingFrequency, terms.PaymentFrequency)
	payment := PaymentAmount(terms.Principal, periodRate, numPeriods)

	schedule, err := BuildSchedule(payment, terms.Principal, periodRate)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Terms:         terms,
		FrequencyText: terms.PaymentFrequency.String(),
		NumPeriods:    numPeriods,
		PeriodRate:    periodRate,
		PaymentAmount: payment,
		Schedule:      schedule,
		Summary:       Summarize(payment, numPeriods, terms.Principal),
		Comparison:    CompareMonthly(terms, payment),
	}, nil
}
