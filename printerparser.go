package moneyfmt

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Printer prints one component of a monetary value to the sink. Errors are
// either sink write failures or formatting-domain failures (*FormatError).
type Printer interface {
	Print(pctx *PrintContext, w io.Writer, money Money) error
}

// Parser consumes one component of the format from the parse context.
// Parsers communicate malformed input only through the context's error
// marker; they never panic or return errors for bad data.
type Parser interface {
	Parse(ctx *ParseContext)
}

// printerParser is one slot of a formatter chain. Either side may be nil,
// making the owning formatter print-only or parse-only.
type printerParser struct {
	printer Printer
	parser  Parser
	desc    string
}

// literalComponent matches or emits a fixed run of text, case-sensitively.
type literalComponent string

func (l literalComponent) Print(pctx *PrintContext, w io.Writer, money Money) error {
	_, err := io.WriteString(w, string(l))
	return err
}

func (l literalComponent) Parse(ctx *ParseContext) {
	end := ctx.Index() + len(l)
	if end > len(ctx.Text()) || ctx.Text()[ctx.Index():end] != string(l) {
		ctx.SetError()
		return
	}
	ctx.SetIndex(end)
}

func (l literalComponent) String() string { return "'" + string(l) + "'" }

// currencyToken is the closed set of currency-identity components. The
// variants share no state, so a simple enum carries them.
type currencyToken int

const (
	tokenCurrencyCode currencyToken = iota
	tokenCurrencyNumeric3
	tokenCurrencyNumeric
)

func (t currencyToken) Print(pctx *PrintContext, w io.Writer, money Money) error {
	currency := money.Currency()
	if currency.Code() == "" {
		return &FormatError{Msg: "unable to print: money has no currency"}
	}

	out := currency.Code()
	if t != tokenCurrencyCode {
		out = currency.NumericCode()
		if out == "" {
			return &FormatError{Msg: "unable to print: currency " + currency.Code() + " has no numeric code"}
		}
		if t == tokenCurrencyNumeric {
			out = strings.TrimLeft(out, "0")
			if out == "" {
				out = "0"
			}
		}
	}

	_, err := io.WriteString(w, out)
	return err
}

func (t currencyToken) Parse(ctx *ParseContext) {
	start := ctx.Index()
	text := ctx.Text()

	switch t {
	case tokenCurrencyCode:
		if start+3 > len(text) {
			ctx.SetErrorAt(start)
			return
		}
		currency, err := CurrencyOf(text[start : start+3])
		if err != nil {
			ctx.SetErrorAt(start)
			return
		}
		ctx.SetCurrency(currency)
		ctx.SetIndex(start + 3)

	case tokenCurrencyNumeric3:
		if start+3 > len(text) || countASCIIDigits(text[start:start+3]) != 3 {
			ctx.SetErrorAt(start)
			return
		}
		currency, err := CurrencyOfNumeric(text[start : start+3])
		if err != nil {
			ctx.SetErrorAt(start)
			return
		}
		ctx.SetCurrency(currency)
		ctx.SetIndex(start + 3)

	case tokenCurrencyNumeric:
		end := start
		for end < len(text) && end-start < 3 && text[end] >= '0' && text[end] <= '9' {
			end++
		}
		if end == start {
			ctx.SetErrorAt(start)
			return
		}
		currency, err := CurrencyOfNumeric(text[start:end])
		if err != nil {
			ctx.SetErrorAt(start)
			return
		}
		ctx.SetCurrency(currency)
		ctx.SetIndex(end)
	}
}

func (t currencyToken) String() string {
	switch t {
	case tokenCurrencyNumeric3:
		return "${numeric3Code}"
	case tokenCurrencyNumeric:
		return "${numericCode}"
	default:
		return "${code}"
	}
}

func countASCIIDigits(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			count++
		}
	}
	return count
}

// symbolComponent prints the locale-specific currency symbol. There is no
// canonical inverse from symbol text to code, so it has no parser.
type symbolComponent struct{}

func (symbolComponent) Print(pctx *PrintContext, w io.Writer, money Money) error {
	currency := money.Currency()
	if currency.Code() == "" {
		return &FormatError{Msg: "unable to print: money has no currency"}
	}
	_, err := io.WriteString(w, currency.Symbol(pctx.Locale()))
	return err
}

func (symbolComponent) String() string { return "${symbolLocalized}" }

// signDispatch selects between three whole sub-formatters by the sign class
// of the value. Zero is its own class.
type signDispatch struct {
	whenPositive *Formatter
	whenZero     *Formatter
	whenNegative *Formatter
}

func (s signDispatch) Print(pctx *PrintContext, w io.Writer, money Money) error {
	sub := s.whenPositive
	switch {
	case money.IsZero():
		sub = s.whenZero
	case money.IsNegative():
		sub = s.whenNegative
	}
	return sub.printChain(pctx, w, money)
}

// Parse trial-runs all three sub-formatters on independent child contexts.
// The winner is the error-free child that consumed the most text, ties
// resolved in positive, zero, negative order. The parsed amount is then
// reconciled with the winning sign class: the numeric leaf inside a
// sub-formatter has no knowledge of which class selected it.
func (s signDispatch) Parse(ctx *ParseContext) {
	subs := [3]*Formatter{s.whenPositive, s.whenZero, s.whenNegative}

	var winner *ParseContext
	winnerClass := -1
	best := -1
	for i, sub := range subs {
		child := ctx.child()
		sub.parseChain(child)
		if !child.IsError() && child.Index() > best {
			best = child.Index()
			winner = child
			winnerClass = i
		}
	}

	if winner == nil {
		ctx.SetError()
		return
	}

	ctx.mergeChild(winner)
	switch winnerClass {
	case 1:
		ctx.SetAmount(decimal.Zero)
	case 2:
		if amount, ok := ctx.Amount(); ok && amount.Sign() >= 0 {
			ctx.SetAmount(amount.Neg())
		}
	}
}

func (s signDispatch) String() string {
	return "PositiveZeroNegative(" +
		s.whenPositive.String() + "," +
		s.whenZero.String() + "," +
		s.whenNegative.String() + ")"
}
