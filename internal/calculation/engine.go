package calculation

import (
	"fmt"
	"time"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
	money "github.com/rpgo/creditcalc/pkg/decimal"
)

// CalculationEngine resolves loan scenarios. It holds no per-loan state and is
// safe to share between goroutines.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate resolves the one unknown of an annuity loan, or builds the
// payment schedule of a differentiated loan.
func (ce *CalculationEngine) Calculate(params domain.LoanParameters) (*domain.AmortizationResult, error) {
	log := withLoan(ce.Logger, params.Name)
	switch params.Model {
	case domain.ModelAnnuity:
		return ce.calculateAnnuity(params, log)
	case domain.ModelDifferentiated:
		return ce.calculateDifferentiated(params, log)
	default:
		return nil, fmt.Errorf("%w: unknown payment model %q", domain.ErrInvalidInput, params.Model)
	}
}

func (ce *CalculationEngine) calculateAnnuity(params domain.LoanParameters, log Logger) (*domain.AmortizationResult, error) {
	unknowns := params.Unknowns()
	if len(unknowns) != 1 {
		return nil, fmt.Errorf("%w: annuity needs exactly one of principal, payment, periods left out, got %d missing", domain.ErrAmbiguousParameters, len(unknowns))
	}

	result := &domain.AmortizationResult{
		Name:        params.Name,
		Model:       domain.ModelAnnuity,
		Resolved:    unknowns[0],
		RatePercent: params.RatePercent,
	}
	linear := params.PeriodicRate().IsZero()
	if linear {
		log.Debugf("interest-free loan, using linear division")
	}

	switch unknowns[0] {
	case domain.QuantityPayment:
		payment, err := ResolvePayment(*params.Principal, *params.Periods, params.RatePercent)
		if err != nil {
			return nil, err
		}
		result.Principal, result.Periods, result.Payment = *params.Principal, *params.Periods, payment
		log.Debugf("resolved payment %s for principal %s over %d periods", payment, result.Principal, result.Periods)

	case domain.QuantityPrincipal:
		principal, err := ResolvePrincipal(*params.Payment, *params.Periods, params.RatePercent)
		if err != nil {
			return nil, err
		}
		result.Principal, result.Periods, result.Payment = principal, *params.Periods, *params.Payment
		log.Debugf("resolved principal %s for payment %s over %d periods", principal, result.Payment, result.Periods)

	case domain.QuantityPeriods:
		periods, err := ResolvePeriods(*params.Principal, *params.Payment, params.RatePercent)
		if err != nil {
			return nil, err
		}
		result.Principal, result.Periods, result.Payment = *params.Principal, periods, *params.Payment
		log.Debugf("resolved %d periods for principal %s at payment %s", periods, result.Principal, result.Payment)
	}

	if linear {
		result.LastPayment = linearLastPayment(result.Principal, result.Payment, result.Periods)
	}
	if result.HasLastPayment() {
		// (N-1)*A + last - P
		result.Overpayment = money.NewMoneyFromDecimal(result.Payment).MulInt(result.Periods - 1).
			Add(money.NewMoneyFromDecimal(result.LastPayment)).
			Sub(money.NewMoneyFromDecimal(result.Principal)).Decimal
	} else {
		result.Overpayment = AnnuityOverpayment(result.Principal, result.Payment, result.Periods)
	}

	if params.StartDate != nil {
		result.Schedule = annuityPlan(result, dateutil.DueDates(*params.StartDate, result.Periods))
	}
	if result.Overpayment.IsNegative() {
		log.Warnf("negative overpayment %s: payment rounding undercuts principal", result.Overpayment)
	}
	return result, nil
}

func (ce *CalculationEngine) calculateDifferentiated(params domain.LoanParameters, log Logger) (*domain.AmortizationResult, error) {
	if params.Payment != nil {
		return nil, fmt.Errorf("%w: differentiated payments are computed, a payment cannot be supplied", domain.ErrAmbiguousParameters)
	}
	if params.Principal == nil || params.Periods == nil {
		return nil, fmt.Errorf("%w: differentiated schedule needs both principal and periods", domain.ErrAmbiguousParameters)
	}

	amounts, overpayment, err := DifferentiatedSchedule(*params.Principal, *params.Periods, params.RatePercent)
	if err != nil {
		return nil, err
	}

	var dueDates []time.Time
	if params.StartDate != nil {
		dueDates = dateutil.DueDates(*params.StartDate, len(amounts))
	}
	schedule := make([]domain.SchedulePeriod, len(amounts))
	for idx, amount := range amounts {
		schedule[idx] = domain.SchedulePeriod{Period: idx + 1, Amount: amount}
		if dueDates != nil {
			schedule[idx].DueDate = &dueDates[idx]
		}
	}
	log.Debugf("built %d-period differentiated schedule, overpayment %s", len(schedule), overpayment)

	return &domain.AmortizationResult{
		Name:        params.Name,
		Model:       domain.ModelDifferentiated,
		Resolved:    domain.QuantitySchedule,
		Principal:   *params.Principal,
		Periods:     *params.Periods,
		RatePercent: params.RatePercent,
		Schedule:    schedule,
		Overpayment: overpayment,
	}, nil
}

// annuityPlan lays the constant payment out over dated periods
func annuityPlan(result *domain.AmortizationResult, dueDates []time.Time) []domain.SchedulePeriod {
	plan := make([]domain.SchedulePeriod, len(dueDates))
	for idx := range dueDates {
		amount := result.Payment
		if idx == len(dueDates)-1 && result.HasLastPayment() {
			amount = result.LastPayment
		}
		plan[idx] = domain.SchedulePeriod{Period: idx + 1, Amount: amount, DueDate: &dueDates[idx]}
	}
	return plan
}
