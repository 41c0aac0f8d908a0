package moneyfmt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an immutable monetary value: an arbitrary-precision decimal
// amount in a single currency. The scale is whatever the amount carries;
// use Rounded to snap to the currency's standard fraction digits.
type Money struct {
	currency Currency
	amount   decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// NewMoney wraps a currency and an amount into a Money value.
func NewMoney(currency Currency, amount decimal.Decimal) Money {
	return Money{currency: currency, amount: amount}
}

// MoneyOf builds a Money from a currency code and any numeric value.
func MoneyOf[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](code string, value T) (Money, error) {
	currency, err := CurrencyOf(code)
	if err != nil {
		return Money{}, err
	}
	return Money{currency: currency, amount: newDecimal(value)}, nil
}

// MustMoney builds a Money from a currency code and a decimal string,
// panicking on invalid input. It simplifies initialization of globals and
// tests.
func MustMoney(code, amount string) Money {
	currency, err := CurrencyOf(code)
	if err != nil {
		panic(err)
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		panic(fmt.Sprintf("moneyfmt: invalid amount %q: %v", amount, err))
	}
	return Money{currency: currency, amount: dec}
}

// Currency returns the money's currency.
func (m Money) Currency() Currency { return m.currency }

// Amount returns the money's amount as an arbitrary-precision decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) Equal(n Money) bool {
	return m.currency == n.currency && m.amount.Equal(n.amount)
}

func (m Money) Neg() Money { return Money{currency: m.currency, amount: m.amount.Neg()} }
func (m Money) Abs() Money { return Money{currency: m.currency, amount: m.amount.Abs()} }

// Add returns m+n. Both operands must share a currency.
func (m Money) Add(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.currency, n.currency)
	}
	return Money{currency: m.currency, amount: m.amount.Add(n.amount)}, nil
}

// Sub returns m-n. Both operands must share a currency.
func (m Money) Sub(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, fmt.Errorf("%w: %s != %s", ErrCurrencyMismatch, m.currency, n.currency)
	}
	return Money{currency: m.currency, amount: m.amount.Sub(n.amount)}, nil
}

// Mul scales the amount by the given factor, keeping the currency.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{currency: m.currency, amount: m.amount.Mul(factor)}
}

// Rounded returns a copy rounded half-up to the currency's standard
// fraction digits.
func (m Money) Rounded() Money {
	return Money{currency: m.currency, amount: m.amount.Round(int32(m.currency.DecimalPlaces()))}
}

// String renders the value as "<CODE> <amount>" without locale styling.
// Use a Formatter for locale-aware output.
func (m Money) String() string {
	code := m.currency.Code()
	if code == "" {
		code = "XXX"
	}
	return code + " " + m.amount.String()
}
