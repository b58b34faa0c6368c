package calculation

import (
	"math/rand"
	"testing"

	"github.com/rpgo/creditcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestResolvePayment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		periods   int
		rate      decimal.Decimal
		expected  decimal.Decimal
	}{
		{"Ten periods at 10%", d("1000000"), 10, d("10"), d("104641")},
		{"Five years at 10%", d("1000000"), 60, d("10"), d("21248")},
		{"Interest free divides evenly", d("1200"), 12, d("0"), d("100")},
		{"Interest free rounds up", d("1000"), 9, d("0"), d("112")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePayment(tt.principal, tt.periods, tt.rate)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestResolvePrincipal(t *testing.T) {
	tests := []struct {
		name     string
		payment  decimal.Decimal
		periods  int
		rate     decimal.Decimal
		expected decimal.Decimal
	}{
		{"Fractional payment", d("8721.8"), 120, d("5.6"), d("800000")},
		{"Interest free", d("250"), 4, d("0"), d("1000")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePrincipal(tt.payment, tt.periods, tt.rate)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestResolvePeriods(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		payment   decimal.Decimal
		rate      decimal.Decimal
		expected  int
	}{
		{"Two years at 7.8%", d("500000"), d("23000"), d("7.8"), 24},
		{"Interest free exact", d("1000"), d("250"), d("0"), 4},
		{"Interest free remainder", d("1000"), d("300"), d("0"), 4},
		{"Single period", d("1000"), d("2000"), d("12"), 1},
		{"Tiny rate needs one more period than interest free", d("1000"), d("500"), d("0.00000000000001"), 3},
		{"Payment just above first period interest", d("1000"), d("10.01"), d("12"), 695},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriods(tt.principal, tt.payment, tt.rate)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.False(t, AnnuityOverpayment(tt.principal, tt.payment, got).IsNegative())
		})
	}
}

func TestResolvePeriods_TooMany(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		payment   decimal.Decimal
		rate      decimal.Decimal
	}{
		{"Interest free", d("1000000"), d("1"), d("0")},
		{"Barely above interest", d("1000"), d("10.00001"), d("12")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriods(tt.principal, tt.payment, tt.rate)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "more than 1200 periods")
		})
	}
}

func TestResolvePeriods_InvertsResolvePayment(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for k := 0; k < 200; k++ {
		principal := decimal.NewFromInt(int64(1000 + r.Intn(5_000_000)))
		periods := 1 + r.Intn(360)
		rate := decimal.NewFromInt(int64(r.Intn(3000))).Div(decimal.NewFromInt(100))

		payment, err := ResolvePayment(principal, periods, rate)
		require.NoError(t, err)
		got, err := ResolvePeriods(principal, payment, rate)
		require.NoError(t, err)
		assert.True(t, got >= 1 && got <= periods, "P=%s N=%d r=%s: payment %s resolved to %d periods", principal, periods, rate, payment, got)
	}
}

func TestCoversPrincipal(t *testing.T) {
	i := domain.PeriodicRate(d("0.00000000000001"))
	assert.False(t, coversPrincipal(d("1000"), d("500"), i, 2), "any interest leaves a balance after two halves")
	assert.True(t, coversPrincipal(d("1000"), d("500"), i, 3))

	i = domain.PeriodicRate(d("7.8"))
	assert.False(t, coversPrincipal(d("500000"), d("23000"), i, 23))
	assert.True(t, coversPrincipal(d("500000"), d("23000"), i, 24))
}

func TestResolvePeriods_InsufficientPayment(t *testing.T) {
	// monthly interest on 1,000,000 at 10% is ~8333, far above the payment
	_, err := ResolvePeriods(d("1000000"), d("1000"), d("10"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	assert.Contains(t, err.Error(), "8333.33")

	// a payment equal to the interest never amortizes either
	_, err = ResolvePeriods(d("1200"), d("10"), d("10"))
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestResolvers_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"Payment zero principal", func() error { _, err := ResolvePayment(d("0"), 10, d("10")); return err }},
		{"Payment zero periods", func() error { _, err := ResolvePayment(d("1000"), 0, d("10")); return err }},
		{"Payment negative rate", func() error { _, err := ResolvePayment(d("1000"), 10, d("-1")); return err }},
		{"Principal negative payment", func() error { _, err := ResolvePrincipal(d("-5"), 10, d("10")); return err }},
		{"Principal negative periods", func() error { _, err := ResolvePrincipal(d("100"), -3, d("10")); return err }},
		{"Periods zero payment", func() error { _, err := ResolvePeriods(d("1000"), d("0"), d("10")); return err }},
		{"Periods negative principal", func() error { _, err := ResolvePeriods(d("-1000"), d("10"), d("10")); return err }},
		{"Periods negative rate", func() error { _, err := ResolvePeriods(d("1000"), d("10"), d("-0.5")); return err }},
		{"Payment periods over limit", func() error { _, err := ResolvePayment(d("1000"), domain.MaxPeriods+1, d("10")); return err }},
		{"Principal periods over limit", func() error { _, err := ResolvePrincipal(d("100"), 1<<40, d("10")); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAnnuityOverpayment(t *testing.T) {
	assert.True(t, d("274880").Equal(AnnuityOverpayment(d("1000000"), d("21248"), 60)))
	assert.True(t, d("52000").Equal(AnnuityOverpayment(d("500000"), d("23000"), 24)))
}

func TestLinearLastPayment(t *testing.T) {
	assert.True(t, d("104").Equal(linearLastPayment(d("1000"), d("112"), 9)))
	assert.True(t, linearLastPayment(d("1200"), d("100"), 12).IsZero())
	// 10 split into six payments of 2 leaves nothing for the sixth
	assert.True(t, linearLastPayment(d("10"), d("2"), 6).IsZero())
}

func TestPaymentPrincipalRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for k := 0; k < 200; k++ {
		principal := decimal.NewFromInt(int64(1000 + r.Intn(5_000_000)))
		periods := 1 + r.Intn(360)
		rate := decimal.NewFromInt(int64(r.Intn(3000))).Div(decimal.NewFromInt(100))

		payment, err := ResolvePayment(principal, periods, rate)
		require.NoError(t, err)
		back, err := ResolvePrincipal(payment, periods, rate)
		require.NoError(t, err)

		diff := back.Sub(principal).Abs()
		assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(int64(periods))),
			"P=%s N=%d r=%s: payment %s maps back to %s", principal, periods, rate, payment, back)
	}
}

func TestResolvePayment_DecreasesWithPeriods(t *testing.T) {
	for _, rate := range []decimal.Decimal{d("0"), d("7.8"), d("10")} {
		prev, err := ResolvePayment(d("1000000"), 1, rate)
		require.NoError(t, err)
		for n := 2; n <= 120; n++ {
			got, err := ResolvePayment(d("1000000"), n, rate)
			require.NoError(t, err)
			assert.True(t, got.LessThan(prev), "rate %s: payment for %d periods (%s) should be below %d periods (%s)", rate, n, got, n-1, prev)
			prev = got
		}
	}
}

func TestAnnuityOverpayment_NonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for k := 0; k < 200; k++ {
		principal := decimal.NewFromInt(int64(100 + r.Intn(2_000_000)))
		periods := 1 + r.Intn(240)
		rate := decimal.NewFromInt(int64(r.Intn(2500))).Div(decimal.NewFromInt(100))

		payment, err := ResolvePayment(principal, periods, rate)
		require.NoError(t, err)
		assert.False(t, AnnuityOverpayment(principal, payment, periods).IsNegative())
	}
}
