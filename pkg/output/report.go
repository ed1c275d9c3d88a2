package output

import (
	"github.com/iwvelando/amortize/pkg/amortization"
	"github.com/shopspring/decimal"
)

// Report is the presentation shape of one calculated loan.
type Report struct {
	Name          string                  `json:"name" yaml:"name"`
	Terms         amortization.LoanTerms  `json:"terms" yaml:"terms"`
	FrequencyText string                  `json:"frequencyText" yaml:"frequencyText"`
	NumPeriods    int                     `json:"numPeriods" yaml:"numPeriods"`
	PeriodRate    float64                 `json:"periodRate" yaml:"periodRate"`
	PaymentAmount float64                 `json:"paymentAmount" yaml:"paymentAmount"`
	Summary       amortization.Summary    `json:"summary" yaml:"summary"`
	Comparison    amortization.Comparison `json:"comparison" yaml:"comparison"`
	Warnings      []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Rows          []Row                   `json:"rows" yaml:"rows"`

	cents []amortization.CentRow
}

// Row is one schedule row rounded to cents. Only Balance is set on the
// starting balance row; the other fields encode as null.
type Row struct {
	Index     *int     `json:"index" yaml:"index"`
	Amount    *float64 `json:"amount" yaml:"amount"`
	Interest  *float64 `json:"interest" yaml:"interest"`
	Principal *float64 `json:"principal" yaml:"principal"`
	Balance   float64  `json:"balance" yaml:"balance"`
}

// NewReport builds the Report for a calculation.
func NewReport(name string, result amortization.Result, warnings []string) Report {
	cents := result.Schedule.Cents()
	rows := make([]Row, 0, len(cents))
	for _, c := range cents {
		row := Row{Balance: c.Balance.InexactFloat64()}
		if !c.IsInitial() {
			index := c.Index
			row.Index = &index
			row.Amount = floatPtr(c.Amount)
			row.Interest = floatPtr(c.Interest)
			row.Principal = floatPtr(c.Principal)
		}
		rows = append(rows, row)
	}

	return Report{
		Name:          name,
		Terms:         result.Terms,
		FrequencyText: result.FrequencyText,
		NumPeriods:    result.NumPeriods,
		PeriodRate:    result.PeriodRate,
		PaymentAmount: result.PaymentAmount,
		Summary:       result.Summary,
		Comparison:    result.Comparison,
		Warnings:      warnings,
		Rows:          rows,
		cents:         cents,
	}
}

func floatPtr(d decimal.Decimal) *float64 {
	v := d.InexactFloat64()
	return &v
}
