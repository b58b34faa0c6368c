package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func m(s string) Money { return NewMoneyFromDecimal(stddec.RequireFromString(s)) }

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	got := NewMoneyFromDecimal(d)
	if !got.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", got.Decimal, d)
	}
	if got := m("8721.8").String(); got != "8721.8" {
		t.Fatalf("display mismatch: got %s", got)
	}
}

func TestCeilUnits(t *testing.T) {
	cases := []struct{ in, out string }{
		{"104640.38", "104641"},
		{"100000", "100000"},
		{"100000.0000000000000001", "100000"}, // below noise threshold
		{"99999.9999999999999999", "100000"},
		{"0.01", "1"},
	}
	for _, c := range cases {
		if got := m(c.in).CeilUnits().String(); got != c.out {
			t.Fatalf("ceil(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestRoundUnits(t *testing.T) {
	// half away from zero, not banker's
	cases := []struct{ in, out string }{
		{"800000.3495", "800000"},
		{"2.5", "3"},
		{"3.5", "4"},
		{"2.4999", "2"},
		{"-2.5", "-3"},
	}
	for _, c := range cases {
		if got := m(c.in).RoundUnits().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := m("10.10")
	b := m("5.05")
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Mul(stddec.RequireFromString("2.5")).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.MulInt(3).String(); got != "30.3" {
		t.Fatalf("MulInt got %s", got)
	}
	if got := m("1000").DivInt(4).String(); got != "250" {
		t.Fatalf("DivInt got %s", got)
	}
	if got := m("1").DivInt(3).String(); got != "0.3333333333333333333333333333" {
		t.Fatalf("DivInt precision got %s", got)
	}
}

func TestCompound(t *testing.T) {
	base := stddec.NewFromFloat(1.5)
	if got := Compound(base, 0); !got.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("Compound(_, 0) got %s", got)
	}
	if got := Compound(base, 3); !got.Equal(stddec.RequireFromString("3.375")) {
		t.Fatalf("Compound(1.5, 3) got %s", got)
	}
	// (1 + 0.1)^10 = 2.5937424601
	if got := Compound(stddec.RequireFromString("1.1"), 10); !got.Equal(stddec.RequireFromString("2.5937424601")) {
		t.Fatalf("Compound(1.1, 10) got %s", got)
	}
}

func TestComparisons(t *testing.T) {
	a := m("10")
	b := m("20")

	if !b.GreaterThan(a) || !b.GreaterThanOrEqual(a) {
		t.Fatalf("GreaterThan/GreaterThanOrEqual logic failure")
	}
	if !a.LessThan(b) || !a.LessThanOrEqual(b) {
		t.Fatalf("LessThan/LessThanOrEqual logic failure")
	}
	if !a.Equal(m("10.0")) || b.Equal(a) {
		t.Fatalf("Equal logic failure")
	}
	if !Zero().IsZero() || !m("-0.01").IsNegative() || !b.IsPositive() {
		t.Fatalf("sign checks failed")
	}
	if !Max(a, b).Equal(b) || !Max(m("-5"), Zero()).IsZero() {
		t.Fatalf("Max failed")
	}
}
