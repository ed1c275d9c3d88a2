package amortization

import (
	"fmt"
	"iter"

	"github.com/iwvelando/amortize/pkg/constants"
	"github.com/iwvelando/amortize/pkg/mathutil"
)

// PaymentRow holds the values for a given payment. The leading row of a
// Schedule has Index 0 and only carries the starting Balance.
type PaymentRow struct {
	Index     int
	Amount    float64
	Interest  float64
	Principal float64
	Balance   float64
}

// IsInitial reports whether r is the starting balance row.
func (r PaymentRow) IsInitial() bool {
	return r.Index == 0
}

// Schedule is an ordered amortization schedule: the starting balance row
// followed by one row per payment until the balance reaches zero.
type Schedule []PaymentRow

// Payments returns the schedule without its starting balance row.
func (s Schedule) Payments() []PaymentRow {
	if len(s) == 0 {
		return nil
	}
	return s[1:]
}

// Final returns the last row of the schedule.
func (s Schedule) Final() PaymentRow {
	if len(s) == 0 {
		return PaymentRow{}
	}
	return s[len(s)-1]
}

// TotalPaid sums the amount of every payment row.
func (s Schedule) TotalPaid() float64 {
	total := 0.0
	for _, row := range s.Payments() {
		total += row.Amount
	}
	return total
}

// TotalInterest sums the interest of every payment row.
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, row := range s.Payments() {
		total += row.Interest
	}
	return total
}

// CreatePayment splits one payment made against previousBalance into its
// interest and principal parts. When the payment would overshoot the
// remaining balance plus interest it is reduced to exactly that sum, so the
// last payment of a schedule is usually smaller than the others.
func CreatePayment(paymentAmount, previousBalance, periodRate float64, index int) PaymentRow {
	interest := periodRate * previousBalance
	if interest+previousBalance < paymentAmount {
		paymentAmount = previousBalance + interest
	}
	principal := paymentAmount - interest
	balance := previousBalance - principal
	if balance < 0 {
		// Float residue from the final payment.
		balance = 0
	}

	return PaymentRow{
		Index:     index,
		Amount:    paymentAmount,
		Interest:  interest,
		Principal: principal,
		Balance:   balance,
	}
}

// Rows lazily yields the starting balance row and then one row per payment
// until the balance rounds to zero cents. At most constants.MaxScheduleRows
// payment rows are produced, so the sequence is finite even when the payment
// never catches up with the interest. Every iteration starts from principal.
func Rows(paymentAmount, principal, periodRate float64) iter.Seq[PaymentRow] {
	return func(yield func(PaymentRow) bool) {
		balance := principal
		if !yield(PaymentRow{Balance: balance}) {
			return
		}
		for index := 1; index <= constants.MaxScheduleRows && !mathutil.IsSettled(balance); index++ {
			row := CreatePayment(paymentAmount, balance, periodRate, index)
			balance = row.Balance
			if !yield(row) {
				return
			}
		}
	}
}

// BuildSchedule collects Rows into a Schedule. It fails with
// ErrPaymentTooSmall when the payment is not a positive number, when it does
// not exceed the first period's interest, or when the balance is still
// outstanding after constants.MaxScheduleRows payments.
func BuildSchedule(paymentAmount, principal, periodRate float64) (Schedule, error) {
	if !mathutil.IsFinite(paymentAmount) || paymentAmount <= 0 {
		return nil, fmt.Errorf("%w: payment amount %v is not a positive number", ErrPaymentTooSmall, paymentAmount)
	}
	if firstInterest := periodRate * principal; paymentAmount <= firstInterest {
		return nil, fmt.Errorf("%w: payment %.2f does not exceed the first interest charge of %.2f",
			ErrPaymentTooSmall, paymentAmount, firstInterest)
	}

	var schedule Schedule
	for row := range Rows(paymentAmount, principal, periodRate) {
		schedule = append(schedule, row)
	}

	if final := schedule.Final(); !mathutil.IsSettled(final.Balance) {
		return nil, fmt.Errorf("%w: balance of %.2f remains after %d payments",
			ErrPaymentTooSmall, final.Balance, final.Index)
	}
	return schedule, nil
}
