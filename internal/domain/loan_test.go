package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePaymentModel(t *testing.T) {
	tests := []struct {
		token string
		want  PaymentModel
		ok    bool
	}{
		{"annuity", ModelAnnuity, true},
		{" Annuity ", ModelAnnuity, true},
		{"diff", ModelDifferentiated, true},
		{"DIFF", ModelDifferentiated, true},
		{"differentiated", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParsePaymentModel(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodicRate(t *testing.T) {
	assert.True(t, PeriodicRate(decimal.NewFromInt(12)).Equal(decimal.RequireFromString("0.01")))
	assert.True(t, PeriodicRate(decimal.Zero).IsZero())

	ten := decimal.NewFromInt(10)
	built := NewLoanParameters(ModelAnnuity, nil, nil, nil, ten)
	literal := LoanParameters{Model: ModelAnnuity, RatePercent: ten}
	assert.True(t, built.PeriodicRate().Equal(literal.PeriodicRate()))
	assert.Equal(t, "0.0083333333", built.PeriodicRate().StringFixed(10))
}

func TestUnknowns(t *testing.T) {
	amount := decimal.NewFromInt(1000)
	periods := 12

	params := NewLoanParameters(ModelAnnuity, &amount, nil, &periods, decimal.Zero)
	assert.Equal(t, []Quantity{QuantityPayment}, params.Unknowns())

	params = NewLoanParameters(ModelAnnuity, nil, &amount, nil, decimal.Zero)
	assert.Equal(t, []Quantity{QuantityPrincipal, QuantityPeriods}, params.Unknowns())

	params = NewLoanParameters(ModelAnnuity, &amount, &amount, &periods, decimal.Zero)
	assert.Empty(t, params.Unknowns())
}

func TestLoanRequest_YAML(t *testing.T) {
	input := `
name: house
type: annuity
principal: 1000000
interest: "7.8"
periods: 60
start_date: "2025-01-31"
`
	var req LoanRequest
	require.NoError(t, yaml.Unmarshal([]byte(input), &req))
	assert.Equal(t, "house", req.Name)
	assert.Equal(t, "annuity", req.Type)
	require.NotNil(t, req.Principal)
	assert.True(t, decimal.NewFromInt(1000000).Equal(*req.Principal))
	assert.Nil(t, req.Payment)
	assert.True(t, decimal.RequireFromString("7.8").Equal(*req.Interest))
	assert.Equal(t, 60, *req.Periods)
	assert.Equal(t, "2025-01-31", req.StartDate)

	out, err := yaml.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(out), "principal: \"1000000\"")
	assert.NotContains(t, string(out), "payment")

	var again LoanRequest
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.True(t, req.Principal.Equal(*again.Principal))
	assert.True(t, req.Interest.Equal(*again.Interest))
}

func TestLoanRequest_YAMLBadNumber(t *testing.T) {
	var req LoanRequest
	err := yaml.Unmarshal([]byte("type: diff\npayment: twelve\n"), &req)
	assert.Error(t, err)
}
