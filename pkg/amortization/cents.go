package amortization

import (
	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/shopspring/decimal"
)

// CentRow is a PaymentRow rounded to whole cents.
type CentRow struct {
	Index     int
	Amount    decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// IsInitial reports whether r is the starting balance row.
func (r CentRow) IsInitial() bool {
	return r.Index == 0
}

// Cents rounds the schedule to cents for display. The balance is carried in
// exact decimal arithmetic so that on every row amount = interest + principal
// and the balance falls by exactly the principal; the last row takes up
// whatever rounding drift is left and closes the balance at 0.00.
func (s Schedule) Cents() []CentRow {
	if len(s) == 0 {
		return nil
	}

	rows := make([]CentRow, 0, len(s))
	balance := toCents(s[0].Balance)
	rows = append(rows, CentRow{Balance: balance})

	payments := s.Payments()
	for i, row := range payments {
		interest := toCents(row.Interest)
		var principal decimal.Decimal
		if i == len(payments)-1 {
			principal = balance
		} else {
			principal = toCents(row.Amount).Sub(interest)
		}
		balance = balance.Sub(principal)

		rows = append(rows, CentRow{
			Index:     row.Index,
			Amount:    interest.Add(principal),
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return rows
}

func toCents(val float64) decimal.Decimal {
	return decimal.NewFromFloat(val).Round(constants.CurrencyPlaces)
}
