package moneyfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Formatter prints and parses monetary values through an immutable chain of
// printer/parser components bound to a locale. Build instances with
// FormatterBuilder; a built formatter is safe for concurrent use.
type Formatter struct {
	locale     string
	exponent   int
	components []printerParser
}

// Locale returns the locale the formatter is bound to.
func (f *Formatter) Locale() string { return f.locale }

// WithLocale returns a formatter over the same chain bound to a different
// locale. The receiver is unaffected.
func (f *Formatter) WithLocale(locale string) *Formatter {
	locale = normalizeLocale(locale)
	if locale == "" {
		panic("moneyfmt: formatter locale must not be empty")
	}
	if locale == f.locale {
		return f
	}
	out := *f
	out.locale = locale
	return &out
}

// WithExponent returns a formatter that prints amounts shifted by the given
// power of ten, for rate-style output such as per-100 or basis points.
// Parsing is unaffected.
func (f *Formatter) WithExponent(exponent int) *Formatter {
	if exponent == f.exponent {
		return f
	}
	out := *f
	out.exponent = exponent
	return &out
}

// IsPrinter reports whether every component in the chain can print.
func (f *Formatter) IsPrinter() bool {
	for _, component := range f.components {
		if component.printer == nil {
			return false
		}
	}
	return true
}

// IsParser reports whether every component in the chain can parse.
func (f *Formatter) IsParser() bool {
	for _, component := range f.components {
		if component.parser == nil {
			return false
		}
	}
	return true
}

// Print renders the value as a string.
func (f *Formatter) Print(money Money) (string, error) {
	var out strings.Builder
	if err := f.PrintTo(&out, money); err != nil {
		return "", err
	}
	return out.String(), nil
}

// PrintTo renders the value into the caller-supplied sink. Failures raised
// by the sink are wrapped into *FormatError with the original as cause;
// use errors.Unwrap (or errors.As against the sink's error type) to
// distinguish them from genuine formatting failures.
func (f *Formatter) PrintTo(w io.Writer, money Money) error {
	if w == nil {
		panic("moneyfmt: print sink must not be nil")
	}
	if !f.IsPrinter() {
		return ErrNotPrintable
	}

	pctx := newPrintContext(f.locale, f.exponent)
	if err := f.printChain(pctx, w, money); err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			return err
		}
		return &FormatError{Msg: "writing to sink failed", Cause: err}
	}
	return nil
}

func (f *Formatter) printChain(pctx *PrintContext, w io.Writer, money Money) error {
	for _, component := range f.components {
		if err := component.printer.Print(pctx, w, money); err != nil {
			return err
		}
	}
	return nil
}

// Parse runs the chain from the given start index and returns the raw
// context for inspection. It does not validate completeness: callers must
// check IsError, IsFullyParsed and IsComplete themselves. Only capability
// and start-index violations are returned as errors.
func (f *Formatter) Parse(text string, start int) (*ParseContext, error) {
	if !f.IsParser() {
		return nil, ErrNotParsable
	}
	if start < 0 || start > len(text) {
		return nil, fmt.Errorf("moneyfmt: start index %d out of range [0,%d]", start, len(text))
	}

	ctx := newParseContext(f.locale, text, start)
	f.parseChain(ctx)
	return ctx, nil
}

func (f *Formatter) parseChain(ctx *ParseContext) {
	for _, component := range f.components {
		component.parser.Parse(ctx)
		if ctx.IsError() {
			return
		}
	}
}

// ParseMoney parses the whole text strictly: the chain must succeed, consume
// every character, and produce both a currency and an amount. Failures are
// reported as *ParseError naming which condition failed.
func (f *Formatter) ParseMoney(text string) (Money, error) {
	ctx, err := f.Parse(text, 0)
	if err != nil {
		return Money{}, err
	}

	switch {
	case ctx.IsError():
		return Money{}, &ParseError{Kind: ParseErrorAt, Index: ctx.ErrorIndex(), Text: text}
	case !ctx.IsFullyParsed():
		return Money{}, &ParseError{Kind: ParseErrorUnparsedText, Index: ctx.Index(), Text: text}
	case !ctx.IsComplete():
		return Money{}, &ParseError{Kind: ParseErrorIncomplete, Index: ctx.Index(), Text: text}
	}
	return ctx.ToMoney()
}

// String concatenates each component's token representation, such as
// "${amount} ${code}". The result describes the pipeline for diagnostics;
// it is not a machine-parseable grammar.
func (f *Formatter) String() string {
	var out strings.Builder
	for _, component := range f.components {
		out.WriteString(component.desc)
	}
	return out.String()
}
