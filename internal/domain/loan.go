package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PaymentModel selects how a loan is repaid
type PaymentModel string

const (
	// ModelAnnuity repays with a constant payment every period
	ModelAnnuity PaymentModel = "annuity"
	// ModelDifferentiated repays an equal share of principal every period plus interest on what remains
	ModelDifferentiated PaymentModel = "diff"
)

// KnownPaymentModels lists the accepted payment model tokens
var KnownPaymentModels = []PaymentModel{ModelAnnuity, ModelDifferentiated}

// ParsePaymentModel resolves a user supplied token into a PaymentModel
func ParsePaymentModel(token string) (PaymentModel, bool) {
	t := PaymentModel(strings.ToLower(strings.TrimSpace(token)))
	for _, m := range KnownPaymentModels {
		if m == t {
			return m, true
		}
	}
	return "", false
}

// Quantity names one of the values the engine can solve for
type Quantity string

const (
	QuantityPrincipal Quantity = "principal"
	QuantityPayment   Quantity = "payment"
	QuantityPeriods   Quantity = "periods"
	// QuantitySchedule marks a differentiated result, which solves for nothing
	QuantitySchedule Quantity = "schedule"
)

// LoanRequest is a loan as it arrives from flags, a batch file or an HTTP body.
// Every numeric field is optional; absence means "solve for this".
type LoanRequest struct {
	Name      string           `yaml:"name,omitempty" json:"name,omitempty"`
	Type      string           `yaml:"type" json:"type"`
	Principal *decimal.Decimal `yaml:"principal,omitempty" json:"principal,omitempty"`
	Payment   *decimal.Decimal `yaml:"payment,omitempty" json:"payment,omitempty"`
	Periods   *int             `yaml:"periods,omitempty" json:"periods,omitempty"`
	Interest  *decimal.Decimal `yaml:"interest,omitempty" json:"interest,omitempty"`
	StartDate string           `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for LoanRequest
func (lr *LoanRequest) UnmarshalYAML(value *yaml.Node) error {
	// Define a temporary struct with string fields for parsing
	type Alias struct {
		Name      string  `yaml:"name"`
		Type      string  `yaml:"type"`
		Principal *string `yaml:"principal,omitempty"`
		Payment   *string `yaml:"payment,omitempty"`
		Periods   *int    `yaml:"periods,omitempty"`
		Interest  *string `yaml:"interest,omitempty"`
		StartDate string  `yaml:"start_date,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	lr.Name = aux.Name
	lr.Type = aux.Type
	lr.Periods = aux.Periods
	lr.StartDate = aux.StartDate

	var err error
	if lr.Principal, err = optionalDecimal(aux.Principal); err != nil {
		return err
	}
	if lr.Payment, err = optionalDecimal(aux.Payment); err != nil {
		return err
	}
	if lr.Interest, err = optionalDecimal(aux.Interest); err != nil {
		return err
	}
	return nil
}

// MarshalYAML writes decimals as plain scalars instead of structs
func (lr LoanRequest) MarshalYAML() (interface{}, error) {
	type Alias struct {
		Name      string  `yaml:"name,omitempty"`
		Type      string  `yaml:"type"`
		Principal *string `yaml:"principal,omitempty"`
		Payment   *string `yaml:"payment,omitempty"`
		Periods   *int    `yaml:"periods,omitempty"`
		Interest  *string `yaml:"interest,omitempty"`
		StartDate string  `yaml:"start_date,omitempty"`
	}
	return Alias{
		Name:      lr.Name,
		Type:      lr.Type,
		Principal: decimalString(lr.Principal),
		Payment:   decimalString(lr.Payment),
		Periods:   lr.Periods,
		Interest:  decimalString(lr.Interest),
		StartDate: lr.StartDate,
	}, nil
}

func optionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	val, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &val, nil
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

// Configuration is a batch of loans loaded from a YAML file
type Configuration struct {
	Loans []LoanRequest `yaml:"loans" json:"loans"`
}

// LoanParameters is a validated loan scenario. Exactly the unknown values are nil.
type LoanParameters struct {
	Name        string
	Model       PaymentModel
	Principal   *decimal.Decimal
	Payment     *decimal.Decimal
	Periods     *int
	RatePercent decimal.Decimal
	StartDate   *time.Time

	periodicRate decimal.Decimal
}

// MaxPeriods caps the number of monthly periods a loan may run: 100 years
const MaxPeriods = 1200

var rateDivisor = decimal.NewFromInt(1200)

// NewLoanParameters builds a parameter set and derives the monthly rate from
// the nominal annual percentage.
func NewLoanParameters(model PaymentModel, principal, payment *decimal.Decimal, periods *int, ratePercent decimal.Decimal) LoanParameters {
	return LoanParameters{
		Model:        model,
		Principal:    principal,
		Payment:      payment,
		Periods:      periods,
		RatePercent:  ratePercent,
		periodicRate: PeriodicRate(ratePercent),
	}
}

// PeriodicRate converts a nominal annual percentage into a monthly fraction
func PeriodicRate(ratePercent decimal.Decimal) decimal.Decimal {
	return ratePercent.DivRound(rateDivisor, 28)
}

// PeriodicRate returns the monthly rate as a fraction (10% a year -> 0.008333...)
func (lp LoanParameters) PeriodicRate() decimal.Decimal {
	if lp.periodicRate.IsZero() && !lp.RatePercent.IsZero() {
		// built as a literal rather than through NewLoanParameters
		return PeriodicRate(lp.RatePercent)
	}
	return lp.periodicRate
}

// Unknowns lists which of principal, payment and periods are not set
func (lp LoanParameters) Unknowns() []Quantity {
	var missing []Quantity
	if lp.Principal == nil {
		missing = append(missing, QuantityPrincipal)
	}
	if lp.Payment == nil {
		missing = append(missing, QuantityPayment)
	}
	if lp.Periods == nil {
		missing = append(missing, QuantityPeriods)
	}
	return missing
}
