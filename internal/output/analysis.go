package output

import (
	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Comparison summarizes a set of resolved loans side by side.
type Comparison struct {
	CheapestName        string
	CheapestOverpayment decimal.Decimal
	TotalPrincipal      decimal.Decimal
	TotalOverpayment    decimal.Decimal
}

// CompareLoans picks the loan with the lowest overpayment and totals the rest.
// Ties go to the loan listed first.
func CompareLoans(results []domain.AmortizationResult) Comparison {
	var cmp Comparison
	for i, r := range results {
		cmp.TotalPrincipal = cmp.TotalPrincipal.Add(r.Principal)
		cmp.TotalOverpayment = cmp.TotalOverpayment.Add(r.Overpayment)
		if i == 0 || r.Overpayment.LessThan(cmp.CheapestOverpayment) {
			cmp.CheapestName = resultTitle(&results[i], i)
			cmp.CheapestOverpayment = r.Overpayment
		}
	}
	return cmp
}
