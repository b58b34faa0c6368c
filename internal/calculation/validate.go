package calculation

import (
	"fmt"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
)

func validateAmount(name string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", domain.ErrInvalidInput, name, v.String())
	}
	return nil
}

func validatePeriods(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: periods must be positive, got %d", domain.ErrInvalidInput, n)
	}
	if n > domain.MaxPeriods {
		return fmt.Errorf("%w: periods cannot exceed %d, got %d", domain.ErrInvalidInput, domain.MaxPeriods, n)
	}
	return nil
}

func validateRate(ratePercent decimal.Decimal) error {
	if ratePercent.IsNegative() {
		return fmt.Errorf("%w: interest cannot be negative, got %s", domain.ErrInvalidInput, ratePercent.String())
	}
	return nil
}
