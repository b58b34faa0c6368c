package calculation

import (
	"github.com/rpgo/creditcalc/internal/domain"
	money "github.com/rpgo/creditcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

// DifferentiatedSchedule returns the payment due in each period 1..N and the
// total overpayment. Every period repays an equal share of principal plus
// interest on the balance still outstanding at the start of the period:
//
//	payment(m) = ceil(P/N + i*(P - P*(m-1)/N))
//
// Overpayment is measured against ceil(P/N) per period, not the exact share.
func DifferentiatedSchedule(principal decimal.Decimal, periods int, ratePercent decimal.Decimal) ([]decimal.Decimal, decimal.Decimal, error) {
	if err := validateAmount("principal", principal); err != nil {
		return nil, decimal.Zero, err
	}
	if err := validatePeriods(periods); err != nil {
		return nil, decimal.Zero, err
	}
	if err := validateRate(ratePercent); err != nil {
		return nil, decimal.Zero, err
	}

	p := money.NewMoneyFromDecimal(principal)
	i := domain.PeriodicRate(ratePercent)
	share := p.DivInt(periods)
	baseline := share.CeilUnits()

	amounts := make([]decimal.Decimal, 0, periods)
	overpayment := money.Zero()
	for m := 1; m <= periods; m++ {
		outstanding := p.Sub(p.MulInt(m - 1).DivInt(periods))
		due := share.Add(outstanding.Mul(i)).CeilUnits()
		amounts = append(amounts, due.Decimal)
		overpayment = overpayment.Add(due.Sub(baseline))
	}
	return amounts, overpayment.Decimal, nil
}
