package moneyfmt

import (
	"github.com/shopspring/decimal"
)

// PrintContext carries the per-call state of one print operation. A fresh
// context is created for every print and must not be retained.
type PrintContext struct {
	locale   string
	exponent int
}

func newPrintContext(locale string, exponent int) *PrintContext {
	return &PrintContext{locale: locale, exponent: exponent}
}

// Locale returns the locale the chain prints under.
func (c *PrintContext) Locale() string { return c.locale }

// Exponent returns the output-unit exponent for rate-style formatting; the
// printed amount is shifted by this power of ten. Zero for plain printing.
func (c *PrintContext) Exponent() int { return c.exponent }

// ParseContext carries the per-call state of one parse operation: the source
// text, the cursor, an error marker and the accumulated currency and amount.
// A fresh context is created for every parse and must not be shared across
// goroutines. Note that IsError, IsFullyParsed and IsComplete are
// independent; strict callers must check all three.
type ParseContext struct {
	locale     string
	text       string
	index      int
	errorIndex int
	currency   *Currency
	amount     *decimal.Decimal
}

func newParseContext(locale, text string, index int) *ParseContext {
	return &ParseContext{locale: locale, text: text, index: index, errorIndex: -1}
}

// Locale returns the locale the chain parses under.
func (c *ParseContext) Locale() string { return c.locale }

// Text returns the full source text being parsed.
func (c *ParseContext) Text() string { return c.text }

// Index returns the current cursor position, a byte offset into Text.
func (c *ParseContext) Index() int { return c.index }

// SetIndex moves the cursor.
func (c *ParseContext) SetIndex(index int) { c.index = index }

// ErrorIndex returns the recorded error position, or -1 when no component
// has errored.
func (c *ParseContext) ErrorIndex() int { return c.errorIndex }

// SetError records a parse error at the current cursor position.
func (c *ParseContext) SetError() { c.errorIndex = c.index }

// SetErrorAt records a parse error at an explicit position.
func (c *ParseContext) SetErrorAt(index int) { c.errorIndex = index }

// IsError reports whether a component has recorded an error.
func (c *ParseContext) IsError() bool { return c.errorIndex >= 0 }

// IsFullyParsed reports whether the cursor has consumed the whole text.
func (c *ParseContext) IsFullyParsed() bool { return c.index == len(c.text) }

// IsComplete reports whether both a currency and an amount were parsed.
func (c *ParseContext) IsComplete() bool { return c.currency != nil && c.amount != nil }

// Currency returns the accumulated currency, if any component parsed one.
func (c *ParseContext) Currency() (Currency, bool) {
	if c.currency == nil {
		return Currency{}, false
	}
	return *c.currency, true
}

// SetCurrency stores the parsed currency.
func (c *ParseContext) SetCurrency(currency Currency) { c.currency = &currency }

// Amount returns the accumulated amount, if any component parsed one.
func (c *ParseContext) Amount() (decimal.Decimal, bool) {
	if c.amount == nil {
		return decimal.Decimal{}, false
	}
	return *c.amount, true
}

// SetAmount stores the parsed amount.
func (c *ParseContext) SetAmount(amount decimal.Decimal) { c.amount = &amount }

// ToMoney combines the parsed currency and amount into a Money value. It
// fails when the context is not complete.
func (c *ParseContext) ToMoney() (Money, error) {
	if !c.IsComplete() {
		return Money{}, &ParseError{Kind: ParseErrorIncomplete, Index: c.index, Text: c.text}
	}
	return NewMoney(*c.currency, *c.amount), nil
}

// child spawns an independent copy for trial-parsing an alternative
// sub-grammar. The copy starts at the parent cursor and accumulates its own
// results until mergeChild adopts them.
func (c *ParseContext) child() *ParseContext {
	out := &ParseContext{
		locale:     c.locale,
		text:       c.text,
		index:      c.index,
		errorIndex: c.errorIndex,
	}
	if c.currency != nil {
		currency := *c.currency
		out.currency = &currency
	}
	if c.amount != nil {
		amount := *c.amount
		out.amount = &amount
	}
	return out
}

// mergeChild adopts a winning child's consumption and parsed fields.
func (c *ParseContext) mergeChild(child *ParseContext) {
	c.index = child.index
	c.errorIndex = child.errorIndex
	c.currency = child.currency
	c.amount = child.amount
}
