package moneyfmt

import (
	"errors"
	"fmt"
)

// ErrUnknownCurrency indicates a code that is not present in the currency registry.
var ErrUnknownCurrency = errors.New("moneyfmt: unknown currency")

// ErrCurrencyMismatch indicates arithmetic between two different currencies.
var ErrCurrencyMismatch = errors.New("moneyfmt: currency mismatch")

// ErrNotPrintable indicates a formatter whose chain contains a parse-only component.
var ErrNotPrintable = errors.New("moneyfmt: formatter is unable to print")

// ErrNotParsable indicates a formatter whose chain contains a print-only component.
var ErrNotParsable = errors.New("moneyfmt: formatter is unable to parse")

// previewLength bounds the input excerpt carried by ParseError messages.
const previewLength = 64

// ParseErrorKind distinguishes the three ways a strict parse can fail.
type ParseErrorKind int

const (
	// ParseErrorAt means a component recorded an error at an index.
	ParseErrorAt ParseErrorKind = iota
	// ParseErrorUnparsedText means parsing succeeded but trailing text remains.
	ParseErrorUnparsedText
	// ParseErrorIncomplete means the text was consumed but currency or amount is missing.
	ParseErrorIncomplete
)

// ParseError reports a strict parse failure with the failing index and a
// bounded preview of the input text.
type ParseError struct {
	Kind  ParseErrorKind
	Index int
	Text  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorUnparsedText:
		return fmt.Sprintf("moneyfmt: text could not be fully parsed, index %d in %q", e.Index, preview(e.Text))
	case ParseErrorIncomplete:
		return fmt.Sprintf("moneyfmt: parsing did not find both currency and amount in %q", preview(e.Text))
	default:
		return fmt.Sprintf("moneyfmt: text could not be parsed at index %d in %q", e.Index, preview(e.Text))
	}
}

// FormatError reports a failure while printing. When the failure came from
// the caller-supplied sink the original error is carried as the cause and
// can be recovered with errors.Unwrap or errors.As.
type FormatError struct {
	Msg   string
	Cause error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("moneyfmt: %s: %v", e.Msg, e.Cause)
	}
	return "moneyfmt: " + e.Msg
}

// Unwrap exposes the underlying sink error, if any.
func (e *FormatError) Unwrap() error { return e.Cause }

func preview(text string) string {
	if len(text) <= previewLength {
		return text
	}
	return text[:previewLength] + "..."
}
