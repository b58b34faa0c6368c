package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// LedgerStatus describes whether a loan has been paid off
type LedgerStatus string

const (
	StatusRepaid      LedgerStatus = "repaid"
	StatusOutstanding LedgerStatus = "outstanding"
)

// RepaymentLedger tracks what was actually repaid in each period of a loan
type RepaymentLedger struct {
	Principal decimal.Decimal         `json:"principal" yaml:"principal"`
	Repaid    map[int]decimal.Decimal `json:"repaid" yaml:"repaid"`
}

// NewRepaymentLedger creates an empty ledger for a principal
func NewRepaymentLedger(principal decimal.Decimal) RepaymentLedger {
	return RepaymentLedger{Principal: principal, Repaid: map[int]decimal.Decimal{}}
}

// With returns a copy of the ledger with the given periods merged in.
// An entry for a period already present replaces the old amount.
func (l RepaymentLedger) With(repaid map[int]decimal.Decimal) RepaymentLedger {
	merged := make(map[int]decimal.Decimal, len(l.Repaid)+len(repaid))
	for period, amount := range l.Repaid {
		merged[period] = amount
	}
	for period, amount := range repaid {
		merged[period] = amount
	}
	return RepaymentLedger{Principal: l.Principal, Repaid: merged}
}

// Entries returns the ledger rows ordered by period
func (l RepaymentLedger) Entries() []SchedulePeriod {
	periods := make([]int, 0, len(l.Repaid))
	for p := range l.Repaid {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	rows := make([]SchedulePeriod, 0, len(periods))
	for _, p := range periods {
		rows = append(rows, SchedulePeriod{Period: p, Amount: l.Repaid[p]})
	}
	return rows
}

// LedgerSummary reports totals for a RepaymentLedger
type LedgerSummary struct {
	Principal   decimal.Decimal  `json:"principal" yaml:"principal"`
	TotalRepaid decimal.Decimal  `json:"total_repaid" yaml:"total_repaid"`
	Remaining   decimal.Decimal  `json:"remaining" yaml:"remaining"`
	Status      LedgerStatus     `json:"status" yaml:"status"`
	Entries     []SchedulePeriod `json:"entries" yaml:"entries"`
}
