package output

import (
	"fmt"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the calculation conventions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest compounds monthly at the nominal annual rate divided by 12",
	"Payments and period counts are rounded up to whole units",
	"Principal estimates are rounded to the nearest whole unit",
	"Differentiated overpayment is measured against the rounded-up equal share",
}

// GenerateAssumptions adds the loan specific conventions to the defaults
func GenerateAssumptions(r *domain.AmortizationResult) []string {
	out := append([]string(nil), DefaultAssumptions...)
	if r.RatePercent.IsZero() {
		return append(out, "Interest-free: principal is divided evenly, the last payment absorbs the remainder")
	}
	monthly := domain.PeriodicRate(r.RatePercent).Mul(decimalHundred)
	return append(out, fmt.Sprintf("Monthly rate: %s (%s annual)", FormatPercentage(monthly), FormatPercentage(r.RatePercent)))
}

var decimalHundred = decimal.NewFromInt(100)
