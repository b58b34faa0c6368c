package domain

import "errors"

// Validation and resolution failures. Callers match them with errors.Is;
// the wrapping message carries the detail.
var (
	// ErrInvalidInput covers non-positive amounts or periods, a negative rate,
	// and unrecognized payment model tokens.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientPayment means the payment does not even cover the first
	// period's interest, so the loan can never be repaid.
	ErrInsufficientPayment = errors.New("payment does not cover interest")
	// ErrAmbiguousParameters means the set of known values does not identify
	// exactly one thing to solve for.
	ErrAmbiguousParameters = errors.New("ambiguous parameters")
)
