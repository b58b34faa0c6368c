package calculation

import (
	"github.com/rpgo/creditcalc/internal/domain"
)

// ParameterBuilder turns a raw loan request into validated parameters.
// config.InputParser is the usual implementation.
type ParameterBuilder interface {
	BuildParameters(req domain.LoanRequest) (domain.LoanParameters, error)
}

// RunBatch resolves every loan of a batch in file order. A loan that fails
// validation or resolution is recorded as a failure and the rest still run.
func (ce *CalculationEngine) RunBatch(config *domain.Configuration, builder ParameterBuilder) *domain.BatchResult {
	batch := &domain.BatchResult{Results: make([]domain.AmortizationResult, 0, len(config.Loans))}
	for idx, req := range config.Loans {
		result, err := ce.runOne(req, builder)
		if err != nil {
			withLoan(ce.Logger, req.Name).Warnf("loan %d rejected: %v", idx, err)
			batch.Failures = append(batch.Failures, domain.BatchFailure{Index: idx, Name: req.Name, Error: err.Error()})
			continue
		}
		batch.Results = append(batch.Results, *result)
	}
	ce.Logger.Infof("batch finished: %d resolved, %d failed", len(batch.Results), len(batch.Failures))
	return batch
}

func (ce *CalculationEngine) runOne(req domain.LoanRequest, builder ParameterBuilder) (*domain.AmortizationResult, error) {
	params, err := builder.BuildParameters(req)
	if err != nil {
		return nil, err
	}
	return ce.Calculate(params)
}
