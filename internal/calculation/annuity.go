package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/creditcalc/internal/domain"
	money "github.com/rpgo/creditcalc/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalOne  = decimal.NewFromInt(1)
	rateDivisor = decimal.NewFromInt(1200)
)

// ResolvePayment returns the smallest whole payment that retires principal in
// the given number of periods at the nominal annual rate.
func ResolvePayment(principal decimal.Decimal, periods int, ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount("principal", principal); err != nil {
		return decimal.Zero, err
	}
	if err := validatePeriods(periods); err != nil {
		return decimal.Zero, err
	}
	if err := validateRate(ratePercent); err != nil {
		return decimal.Zero, err
	}

	p := money.NewMoneyFromDecimal(principal)
	i := domain.PeriodicRate(ratePercent)
	if i.IsZero() {
		return p.DivInt(periods).CeilUnits().Decimal, nil
	}
	return p.Mul(annuityFactor(i, periods)).CeilUnits().Decimal, nil
}

// ResolvePrincipal estimates how much can be borrowed for a payment over the
// given number of periods, rounded to the nearest whole unit.
func ResolvePrincipal(payment decimal.Decimal, periods int, ratePercent decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount("payment", payment); err != nil {
		return decimal.Zero, err
	}
	if err := validatePeriods(periods); err != nil {
		return decimal.Zero, err
	}
	if err := validateRate(ratePercent); err != nil {
		return decimal.Zero, err
	}

	a := money.NewMoneyFromDecimal(payment)
	i := domain.PeriodicRate(ratePercent)
	if i.IsZero() {
		return a.MulInt(periods).RoundUnits().Decimal, nil
	}
	return a.Div(annuityFactor(i, periods)).RoundUnits().Decimal, nil
}

// ResolvePeriods returns how many periods a payment needs to retire principal.
// A payment at or below the first period's interest never amortizes and fails
// with ErrInsufficientPayment.
func ResolvePeriods(principal, payment decimal.Decimal, ratePercent decimal.Decimal) (int, error) {
	if err := validateAmount("principal", principal); err != nil {
		return 0, err
	}
	if err := validateAmount("payment", payment); err != nil {
		return 0, err
	}
	if err := validateRate(ratePercent); err != nil {
		return 0, err
	}

	p := money.NewMoneyFromDecimal(principal)
	a := money.NewMoneyFromDecimal(payment)
	i := domain.PeriodicRate(ratePercent)
	if i.IsZero() {
		n := p.Div(payment).CeilUnits()
		if n.GreaterThan(money.NewMoneyFromDecimal(maxPeriods)) {
			return 0, tooManyPeriods(payment)
		}
		return int(n.IntPart()), nil
	}

	// P*r/1200 with a single division keeps an exact interest exact
	interest := p.Mul(ratePercent).Div(rateDivisor)
	if a.LessThanOrEqual(interest) {
		return 0, fmt.Errorf("%w: payment %s does not exceed first period interest %s",
			domain.ErrInsufficientPayment, payment.String(), interest.Decimal.StringFixed(2))
	}

	// decimal has no logarithm. N = log1p(iP/(A-iP)) / log1p(i) in float64 is
	// only an estimate; coversPrincipal settles the exact count.
	x := interest.Div(a.Sub(interest).Decimal).InexactFloat64()
	estimate := math.Ceil(math.Log1p(x) / math.Log1p(i.InexactFloat64()))
	if math.IsNaN(estimate) || estimate > domain.MaxPeriods+1 {
		return 0, tooManyPeriods(payment)
	}

	n := int(math.Max(estimate, 1))
	for !coversPrincipal(principal, payment, i, n) {
		n++
		if n > domain.MaxPeriods {
			return 0, tooManyPeriods(payment)
		}
	}
	for n > 1 && coversPrincipal(principal, payment, i, n-1) {
		n--
	}
	return n, nil
}

var maxPeriods = decimal.NewFromInt(domain.MaxPeriods)

func tooManyPeriods(payment decimal.Decimal) error {
	return fmt.Errorf("%w: payment %s needs more than %d periods", domain.ErrInvalidInput, payment.String(), domain.MaxPeriods)
}

// coversPrincipal reports whether n payments retire the loan, i.e. the
// balance P(1+i)^n - A((1+i)^n - 1)/i is at most zero. Multiplied through by
// i so no division rounds the comparison.
func coversPrincipal(principal, payment, i decimal.Decimal, n int) bool {
	growth := money.Compound(decimalOne.Add(i), n)
	paid := payment.Mul(growth.Sub(decimalOne))
	owed := principal.Mul(growth).Mul(i)
	return paid.GreaterThanOrEqual(owed)
}

// AnnuityOverpayment is everything paid beyond the principal: A*N - P
func AnnuityOverpayment(principal, payment decimal.Decimal, periods int) decimal.Decimal {
	return money.NewMoneyFromDecimal(payment).MulInt(periods).Sub(money.NewMoneyFromDecimal(principal)).Decimal
}

// linearLastPayment returns the final remainder when an interest-free loan is
// split into whole payments: P - (N-1)*A. Zero means every period pays A, or
// the remainder does not fall inside (0, A).
func linearLastPayment(principal, payment decimal.Decimal, periods int) decimal.Decimal {
	a := money.NewMoneyFromDecimal(payment)
	last := money.NewMoneyFromDecimal(principal).Sub(a.MulInt(periods - 1))
	if !last.IsPositive() || last.GreaterThanOrEqual(a) {
		return decimal.Zero
	}
	return last.Decimal
}

// annuityFactor is i*(1+i)^n / ((1+i)^n - 1); callers guarantee i > 0
func annuityFactor(i decimal.Decimal, n int) decimal.Decimal {
	growth := money.Compound(decimalOne.Add(i), n)
	return money.NewMoneyFromDecimal(i.Mul(growth)).Div(growth.Sub(decimalOne)).Decimal
}
