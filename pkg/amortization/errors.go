package amortization

import "errors"

var (
	// ErrInvalidLoanTerms is returned when LoanTerms fail boundary validation.
	ErrInvalidLoanTerms = errors.New("invalid loan terms")

	// ErrPaymentTooSmall is returned when the periodic payment cannot pay the
	// loan off, typically because it does not exceed the interest accrued in
	// the first period.
	ErrPaymentTooSmall = errors.New("payment too small")
)
