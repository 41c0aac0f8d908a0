package moneyfmt

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyConstructors(t *testing.T) {
	money := MustMoney("USD", "12.50")
	if money.Currency().Code() != "USD" {
		t.Fatalf("currency = %s", money.Currency())
	}
	if !money.Amount().Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("amount = %s", money.Amount())
	}

	fromInt, err := MoneyOf("EUR", 42)
	if err != nil {
		t.Fatal(err)
	}
	if !fromInt.Amount().Equal(decimal.NewFromInt(42)) {
		t.Fatalf("amount = %s", fromInt.Amount())
	}

	fromFloat, err := MoneyOf("EUR", 10.5)
	if err != nil {
		t.Fatal(err)
	}
	if !fromFloat.Amount().Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("amount = %s", fromFloat.Amount())
	}

	fromDecimal, err := MoneyOf("EUR", decimal.RequireFromString("0.001"))
	if err != nil {
		t.Fatal(err)
	}
	if !fromDecimal.Amount().Equal(decimal.RequireFromString("0.001")) {
		t.Fatalf("amount = %s", fromDecimal.Amount())
	}

	if _, err := MoneyOf("???", 1); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("error = %v, want ErrUnknownCurrency", err)
	}

	mustPanic(t, func() { MustMoney("USD", "not a number") })
	mustPanic(t, func() { MustMoney("???", "1") })
}

func TestMoneyPredicates(t *testing.T) {
	zero := MustMoney("USD", "0")
	pos := MustMoney("USD", "0.01")
	neg := MustMoney("USD", "-3")

	if !zero.IsZero() || zero.IsPositive() || zero.IsNegative() {
		t.Fatal("zero predicates wrong")
	}
	if pos.IsZero() || !pos.IsPositive() || pos.IsNegative() {
		t.Fatal("positive predicates wrong")
	}
	if neg.IsZero() || neg.IsPositive() || !neg.IsNegative() {
		t.Fatal("negative predicates wrong")
	}
}

func TestMoneyEqual(t *testing.T) {
	a := MustMoney("USD", "1.50")
	b := MustMoney("USD", "1.5")
	if !a.Equal(b) {
		t.Fatal("amounts differing only in scale should be equal")
	}
	if a.Equal(MustMoney("EUR", "1.50")) {
		t.Fatal("different currencies should not be equal")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := MustMoney("USD", "1.25")
	b := MustMoney("USD", "0.75")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Amount().Equal(decimal.NewFromInt(2)) {
		t.Fatalf("sum = %s", sum.Amount())
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	if !diff.Amount().Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("diff = %s", diff.Amount())
	}

	if _, err := a.Add(MustMoney("EUR", "1")); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("error = %v, want ErrCurrencyMismatch", err)
	}
	if _, err := a.Sub(MustMoney("EUR", "1")); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("error = %v, want ErrCurrencyMismatch", err)
	}

	doubled := a.Mul(decimal.NewFromInt(2))
	if !doubled.Amount().Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("doubled = %s", doubled.Amount())
	}

	if !a.Neg().Amount().Equal(decimal.RequireFromString("-1.25")) {
		t.Fatal("Neg wrong")
	}
	if !MustMoney("USD", "-4").Abs().Amount().Equal(decimal.NewFromInt(4)) {
		t.Fatal("Abs wrong")
	}
}

func TestMoneyRounded(t *testing.T) {
	if got := MustMoney("USD", "1.005").Rounded().Amount(); !got.Equal(decimal.RequireFromString("1.01")) {
		t.Fatalf("USD rounded = %s, want 1.01", got)
	}
	if got := MustMoney("JPY", "1.5").Rounded().Amount(); !got.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("JPY rounded = %s, want 2", got)
	}
}

func TestMoneyString(t *testing.T) {
	if got := MustMoney("USD", "1.50").String(); got != "USD 1.50" {
		t.Fatalf("String() = %q", got)
	}

	var zero Money
	if got := zero.String(); got != "XXX 0" {
		t.Fatalf("zero String() = %q", got)
	}
}
