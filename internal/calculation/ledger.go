package calculation

import (
	"fmt"

	"github.com/rpgo/creditcalc/internal/domain"
	money "github.com/rpgo/creditcalc/pkg/decimal"
)

// SummarizeLedger totals what was repaid against a principal. A ledger whose
// remaining balance is zero or below is reported as repaid.
func SummarizeLedger(ledger domain.RepaymentLedger) (domain.LedgerSummary, error) {
	if err := validateAmount("principal", ledger.Principal); err != nil {
		return domain.LedgerSummary{}, err
	}

	entries := ledger.Entries()
	total := money.Zero()
	for _, e := range entries {
		if e.Period <= 0 {
			return domain.LedgerSummary{}, fmt.Errorf("%w: ledger period must be positive, got %d", domain.ErrInvalidInput, e.Period)
		}
		if e.Amount.IsNegative() {
			return domain.LedgerSummary{}, fmt.Errorf("%w: repaid amount for period %d cannot be negative", domain.ErrInvalidInput, e.Period)
		}
		total = total.Add(money.NewMoneyFromDecimal(e.Amount))
	}

	remaining := money.NewMoneyFromDecimal(ledger.Principal).Sub(total)
	status := domain.StatusOutstanding
	if !remaining.IsPositive() {
		status = domain.StatusRepaid
	}
	return domain.LedgerSummary{
		Principal:   ledger.Principal,
		TotalRepaid: total.Decimal,
		Remaining:   money.Max(remaining, money.Zero()).Decimal,
		Status:      status,
		Entries:     entries,
	}, nil
}
