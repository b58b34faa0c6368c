package config

import (
	"fmt"
	"os"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/rpgo/creditcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of batch files and validation of loan requests
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch of loans from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// SaveToFile writes a batch configuration as YAML
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidateConfiguration checks the shape of a batch file. Individual loans are
// validated when they are turned into parameters, so one bad loan does not
// sink the rest of the batch.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Loans) == 0 {
		return fmt.Errorf("no loans provided")
	}

	seen := make(map[string]int, len(config.Loans))
	for i, loan := range config.Loans {
		if loan.Type == "" {
			return fmt.Errorf("loan %d: type is required", i)
		}
		if loan.Name == "" {
			continue
		}
		if prev, dup := seen[loan.Name]; dup {
			return fmt.Errorf("loan %d: name %q already used by loan %d", i, loan.Name, prev)
		}
		seen[loan.Name] = i
	}

	return nil
}

// BuildParameters validates a raw request and turns it into LoanParameters.
// Every field is checked on its own before the combination is checked.
func (ip *InputParser) BuildParameters(req domain.LoanRequest) (domain.LoanParameters, error) {
	model, ok := domain.ParsePaymentModel(req.Type)
	if !ok {
		return domain.LoanParameters{}, fmt.Errorf("%w: unrecognized payment type %q, expected annuity or diff", domain.ErrInvalidInput, req.Type)
	}
	if err := positiveIfSet("principal", req.Principal); err != nil {
		return domain.LoanParameters{}, err
	}
	if err := positiveIfSet("payment", req.Payment); err != nil {
		return domain.LoanParameters{}, err
	}
	if req.Periods != nil && *req.Periods <= 0 {
		return domain.LoanParameters{}, fmt.Errorf("%w: periods must be positive, got %d", domain.ErrInvalidInput, *req.Periods)
	}
	if req.Periods != nil && *req.Periods > domain.MaxPeriods {
		return domain.LoanParameters{}, fmt.Errorf("%w: periods cannot exceed %d, got %d", domain.ErrInvalidInput, domain.MaxPeriods, *req.Periods)
	}
	rate := decimal.Zero
	if req.Interest != nil {
		if req.Interest.IsNegative() {
			return domain.LoanParameters{}, fmt.Errorf("%w: interest cannot be negative, got %s", domain.ErrInvalidInput, req.Interest.String())
		}
		rate = *req.Interest
	}

	params := domain.NewLoanParameters(model, req.Principal, req.Payment, req.Periods, rate)
	params.Name = req.Name
	if req.StartDate != "" {
		start, err := dateutil.ParseDate(req.StartDate)
		if err != nil {
			return domain.LoanParameters{}, fmt.Errorf("%w: start date %q must be YYYY-MM-DD", domain.ErrInvalidInput, req.StartDate)
		}
		params.StartDate = &start
	}

	if err := validateCombination(params); err != nil {
		return domain.LoanParameters{}, err
	}
	return params, nil
}

func validateCombination(params domain.LoanParameters) error {
	switch params.Model {
	case domain.ModelDifferentiated:
		if params.Payment != nil {
			return fmt.Errorf("%w: payment cannot be combined with type diff", domain.ErrAmbiguousParameters)
		}
		if params.Principal == nil || params.Periods == nil {
			return fmt.Errorf("%w: type diff needs principal and periods", domain.ErrAmbiguousParameters)
		}
	case domain.ModelAnnuity:
		if n := len(params.Unknowns()); n != 1 {
			return fmt.Errorf("%w: type annuity needs exactly two of principal, payment, periods (%d missing)", domain.ErrAmbiguousParameters, n)
		}
	}
	return nil
}

func positiveIfSet(name string, v *decimal.Decimal) error {
	if v != nil && !v.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", domain.ErrInvalidInput, name, v.String())
	}
	return nil
}

// CreateExampleConfiguration creates an example batch configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	dec := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	periods := func(n int) *int { return &n }
	rate, _ := decimal.NewFromString("7.8")

	return &domain.Configuration{
		Loans: []domain.LoanRequest{
			{
				Name:      "mortgage-payment",
				Type:      string(domain.ModelAnnuity),
				Principal: dec(1000000),
				Periods:   periods(60),
				Interest:  dec(10),
			},
			{
				Name:      "car-term",
				Type:      string(domain.ModelAnnuity),
				Principal: dec(500000),
				Payment:   dec(23000),
				Interest:  &rate,
			},
			{
				Name:      "equal-principal",
				Type:      string(domain.ModelDifferentiated),
				Principal: dec(500000),
				Periods:   periods(8),
				Interest:  &rate,
				StartDate: "2025-01-31",
			},
		},
	}
}
