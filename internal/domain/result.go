package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchedulePeriod is one row of a differentiated repayment schedule
type SchedulePeriod struct {
	Period  int             `json:"period" yaml:"period"`
	Amount  decimal.Decimal `json:"amount" yaml:"amount"`
	DueDate *time.Time      `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// AmortizationResult is the fully resolved outcome of one loan scenario
type AmortizationResult struct {
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Model       PaymentModel     `json:"model" yaml:"model"`
	Resolved    Quantity         `json:"resolved" yaml:"resolved"`
	Principal   decimal.Decimal  `json:"principal" yaml:"principal"`
	Payment     decimal.Decimal  `json:"payment,omitempty" yaml:"payment,omitempty"` // annuity only
	LastPayment decimal.Decimal  `json:"last_payment,omitempty" yaml:"last_payment,omitempty"`
	Periods     int              `json:"periods" yaml:"periods"`
	RatePercent decimal.Decimal  `json:"interest" yaml:"interest"`
	Schedule    []SchedulePeriod `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Overpayment decimal.Decimal  `json:"overpayment" yaml:"overpayment"`
}

// HasLastPayment reports whether the final period differs from the regular payment
func (r AmortizationResult) HasLastPayment() bool {
	return !r.LastPayment.IsZero()
}

// TotalPaid is the sum of every payment made over the life of the loan
func (r AmortizationResult) TotalPaid() decimal.Decimal {
	return r.Principal.Add(r.Overpayment)
}

// BatchResult collects the outcome of every loan in a batch file, in file order
type BatchResult struct {
	Results  []AmortizationResult `json:"results" yaml:"results"`
	Failures []BatchFailure       `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// BatchFailure records a batch entry the engine rejected
type BatchFailure struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Error string `json:"error" yaml:"error"`
}
