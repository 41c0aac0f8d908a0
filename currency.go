package moneyfmt

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	gomoney "github.com/Rhymond/go-money"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency identifies a registered currency by its ISO 4217 alphabetic code.
// The zero value is not a valid currency; obtain instances via CurrencyOf,
// CurrencyOfNumeric or RegisterCurrency.
type Currency struct {
	code string
}

// customCurrencies carries registry data that go-money's AddCurrency cannot
// hold, keyed both ways so numeric parsing works for registered currencies.
var customCurrencies = struct {
	mu        sync.RWMutex
	byNumeric map[string]string
	byCode    map[string]string
}{
	byNumeric: make(map[string]string),
	byCode:    make(map[string]string),
}

// CurrencyOf looks up a currency by its 3-letter code. The lookup is
// case-sensitive: codes are registered upper-case.
func CurrencyOf(code string) (Currency, error) {
	if len(code) != 3 {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	if gomoney.GetCurrency(code) == nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency{code: code}, nil
}

// CurrencyOfNumeric looks up a currency by its ISO 4217 numeric code.
// Codes shorter than three digits are zero-padded, so "36" resolves the
// same currency as "036".
func CurrencyOfNumeric(numeric string) (Currency, error) {
	if numeric == "" || len(numeric) > 3 {
		return Currency{}, fmt.Errorf("%w: numeric %q", ErrUnknownCurrency, numeric)
	}
	for len(numeric) < 3 {
		numeric = "0" + numeric
	}

	customCurrencies.mu.RLock()
	code, ok := customCurrencies.byNumeric[numeric]
	customCurrencies.mu.RUnlock()
	if ok {
		return Currency{code: code}, nil
	}

	if cur := gomoney.GetCurrencyByNumericCode(numeric); cur != nil {
		return Currency{code: cur.Code}, nil
	}
	return Currency{}, fmt.Errorf("%w: numeric %q", ErrUnknownCurrency, numeric)
}

// MustCurrency is like CurrencyOf but panics on unknown codes. It simplifies
// initialization of globals and tests.
func MustCurrency(code string) Currency {
	c, err := CurrencyOf(code)
	if err != nil {
		panic(err)
	}
	return c
}

// RegisterCurrency adds a currency to the registry, replacing any previous
// registration for the same code. The numeric code may be empty.
func RegisterCurrency(code, numericCode string, decimalPlaces int, grapheme string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return Currency{}, fmt.Errorf("moneyfmt: invalid currency code %q", code)
	}
	if decimalPlaces < 0 || decimalPlaces > 30 {
		return Currency{}, fmt.Errorf("moneyfmt: invalid decimal places %d for %q", decimalPlaces, code)
	}
	if grapheme == "" {
		grapheme = code
	}

	gomoney.AddCurrency(code, grapheme, "$1", ".", ",", decimalPlaces)

	if numericCode != "" {
		for len(numericCode) < 3 {
			numericCode = "0" + numericCode
		}
		customCurrencies.mu.Lock()
		customCurrencies.byNumeric[numericCode] = code
		customCurrencies.byCode[code] = numericCode
		customCurrencies.mu.Unlock()
	}

	return Currency{code: code}, nil
}

// Code returns the 3-letter currency code.
func (c Currency) Code() string { return c.code }

func (c Currency) String() string { return c.code }

// NumericCode returns the ISO 4217 numeric code as a 3-digit string, or ""
// when the currency has no numeric code.
func (c Currency) NumericCode() string {
	customCurrencies.mu.RLock()
	numeric, ok := customCurrencies.byCode[c.code]
	customCurrencies.mu.RUnlock()
	if ok {
		return numeric
	}
	if cur := gomoney.GetCurrency(c.code); cur != nil {
		return cur.NumericCode
	}
	return ""
}

// DecimalPlaces returns the currency's standard fraction digits.
func (c Currency) DecimalPlaces() int {
	if cur := gomoney.GetCurrency(c.code); cur != nil {
		return cur.Fraction
	}
	return 0
}

// Symbol returns the display symbol for the currency in the given locale,
// falling back to the registry grapheme and finally the code itself.
func (c Currency) Symbol(locale string) string {
	unit, err := xcurrency.ParseISO(c.code)
	if err != nil {
		return c.fallbackSymbol()
	}

	tag := language.Make(normalizeLocale(locale))
	printer := message.NewPrinter(tag)

	// x/text has no direct symbol accessor, so format a zero amount and
	// strip the formatted number back out of it.
	places := c.DecimalPlaces()
	zero := printer.Sprintf("%v", number.Decimal(0,
		number.MinFractionDigits(places), number.MaxFractionDigits(places)))
	full := printer.Sprintf("%v", xcurrency.Symbol(unit.Amount(0)))
	symbol := strings.TrimFunc(strings.ReplaceAll(full, zero, ""), isNumericResidue)

	if symbol == "" || symbol == c.code {
		return c.fallbackSymbol()
	}
	return symbol
}

// isNumericResidue matches characters left behind when the formatted zero
// does not exactly match the number embedded in the symbol rendering.
func isNumericResidue(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ','
}

func (c Currency) fallbackSymbol() string {
	if cur := gomoney.GetCurrency(c.code); cur != nil && cur.Grapheme != "" {
		return cur.Grapheme
	}
	return c.code
}
