package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("ERROR", format, args...) }

func (r *recordingLogger) add(level, format string, args ...any) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func dp(v string) *decimal.Decimal {
	x := decimal.RequireFromString(v)
	return &x
}

func ip(v int) *int { return &v }

func TestCalculate_AnnuityPayment(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelAnnuity, dp("1000000"), nil, ip(60), d("10"))

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.Equal(t, domain.QuantityPayment, result.Resolved)
	assert.True(t, d("21248").Equal(result.Payment))
	assert.Equal(t, 60, result.Periods)
	assert.True(t, d("274880").Equal(result.Overpayment))
	assert.False(t, result.HasLastPayment())
	assert.Empty(t, result.Schedule)
}

func TestCalculate_AnnuityPrincipal(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelAnnuity, nil, dp("8721.8"), ip(120), d("5.6"))

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.Equal(t, domain.QuantityPrincipal, result.Resolved)
	assert.True(t, d("800000").Equal(result.Principal))
	assert.True(t, d("246616").Equal(result.Overpayment))
}

func TestCalculate_AnnuityPeriods(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelAnnuity, dp("500000"), dp("23000"), nil, d("7.8"))

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.Equal(t, domain.QuantityPeriods, result.Resolved)
	assert.Equal(t, 24, result.Periods)
	assert.True(t, d("52000").Equal(result.Overpayment))
}

func TestCalculate_InterestFreeLastPayment(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), nil, ip(9), decimal.Zero)

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.True(t, d("112").Equal(result.Payment))
	assert.True(t, result.HasLastPayment())
	assert.True(t, d("104").Equal(result.LastPayment))
	assert.True(t, result.Overpayment.IsZero())
}

func TestCalculate_InterestFreePeriods(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), dp("300"), nil, decimal.Zero)

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Periods)
	assert.True(t, d("100").Equal(result.LastPayment))
	assert.True(t, result.Overpayment.IsZero())
}

func TestCalculate_Differentiated(t *testing.T) {
	engine := NewCalculationEngine()
	params := domain.NewLoanParameters(domain.ModelDifferentiated, dp("500000"), nil, ip(8), d("7.8"))

	result, err := engine.Calculate(params)
	require.NoError(t, err)
	assert.Equal(t, domain.QuantitySchedule, result.Resolved)
	require.Len(t, result.Schedule, 8)
	assert.Equal(t, 1, result.Schedule[0].Period)
	assert.True(t, d("65750").Equal(result.Schedule[0].Amount))
	assert.Equal(t, 8, result.Schedule[7].Period)
	assert.True(t, d("62907").Equal(result.Schedule[7].Amount))
	assert.Nil(t, result.Schedule[0].DueDate)
	assert.True(t, d("14628").Equal(result.Overpayment))
}

func TestCalculate_DueDates(t *testing.T) {
	engine := NewCalculationEngine()
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	params := domain.NewLoanParameters(domain.ModelDifferentiated, dp("1000000"), nil, ip(3), d("10"))
	params.StartDate = &start
	result, err := engine.Calculate(params)
	require.NoError(t, err)
	require.NotNil(t, result.Schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), *result.Schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), *result.Schedule[2].DueDate)

	annuity := domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), nil, ip(9), decimal.Zero)
	annuity.StartDate = &start
	result, err = engine.Calculate(annuity)
	require.NoError(t, err)
	require.Len(t, result.Schedule, 9)
	assert.True(t, d("112").Equal(result.Schedule[0].Amount))
	assert.True(t, d("104").Equal(result.Schedule[8].Amount))
}

func TestCalculate_Ambiguous(t *testing.T) {
	engine := NewCalculationEngine()
	tests := []struct {
		name   string
		params domain.LoanParameters
	}{
		{"Annuity nothing missing", domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), dp("100"), ip(10), d("5"))},
		{"Annuity two missing", domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), nil, nil, d("5"))},
		{"Annuity all missing", domain.NewLoanParameters(domain.ModelAnnuity, nil, nil, nil, d("5"))},
		{"Differentiated with payment", domain.NewLoanParameters(domain.ModelDifferentiated, dp("1000"), dp("100"), ip(10), d("5"))},
		{"Differentiated missing periods", domain.NewLoanParameters(domain.ModelDifferentiated, dp("1000"), nil, nil, d("5"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Calculate(tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrAmbiguousParameters)
		})
	}
}

func TestCalculate_Errors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.Calculate(domain.NewLoanParameters("weekly", dp("1000"), nil, ip(10), d("5")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.Calculate(domain.NewLoanParameters(domain.ModelAnnuity, dp("1000000"), dp("1000"), nil, d("10")))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestCalculate_LiteralParameters(t *testing.T) {
	// a literal skips NewLoanParameters but must still see the real rate
	params := domain.LoanParameters{
		Model:       domain.ModelAnnuity,
		Principal:   dp("1000000"),
		Periods:     ip(10),
		RatePercent: d("10"),
	}
	result, err := NewCalculationEngine().Calculate(params)
	require.NoError(t, err)
	assert.True(t, d("104641").Equal(result.Payment))
	assert.False(t, result.HasLastPayment())
}

func TestCalculate_LogsWithLoanName(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	params := domain.NewLoanParameters(domain.ModelAnnuity, dp("1000"), nil, ip(4), decimal.Zero)
	params.Name = "car"
	_, err := engine.Calculate(params)
	require.NoError(t, err)

	require.NotEmpty(t, logger.lines)
	for _, line := range logger.lines {
		assert.Contains(t, line, "[car]")
	}

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
